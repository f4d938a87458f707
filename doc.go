// Package electionkit provides serialization for election records: a
// canonical typed JSON document format, a reversible fixed-size padded
// block encoding, and file helpers for reading and writing whole records.
//
// # Document format
//
// Records are serialized as UTF-8 JSON with two-space indentation. Types
// without an unambiguous structural mapping (timestamps, large integers,
// group elements, enumerations) carry their own codecs, enumerated by a
// coercion registry that is built once and passed explicitly into every
// serializer:
//
//	ser, err := electionkit.NewSerializer()
//	if err != nil {
//	    // handle error
//	}
//	raw, err := ser.ToRaw(manifest)
//
// # Padded blocks
//
// AddPadding and RemovePadding convert between arbitrary byte strings and
// blocks of a fixed total size, for storage slots that require a constant
// length. A two-byte big-endian prefix records the number of filler bytes:
//
//	block, err := electionkit.AddPadding(raw, electionkit.Bytes512, false)
//	original, err := electionkit.RemovePadding(block, electionkit.Bytes512)
//
// Padding and document I/O are independent capabilities; PaddedEncode and
// PaddedDecode compose them for records that must fit a block.
//
// # Setup workflow
//
// The cmd/electionkit CLI runs an automated key ceremony and produces the
// context, constants and guardian key files for an election from a
// manifest, a guardian count and a quorum.
package electionkit
