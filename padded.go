package electionkit

import (
	"github.com/voteforge/electionkit/internal/padding"
)

// PaddedDataSize is a supported total length for a fixed-size padded
// block. The usable payload capacity is the total length minus the
// two-byte padding indicator.
type PaddedDataSize = padding.BlockSize

// Bytes512 is the 512-byte block size class (510-byte capacity).
const Bytes512 = padding.Bytes512

// AddPadding encodes message into a block of exactly size bytes. If the
// message exceeds the block capacity and allowTruncation is false, it
// fails with ErrTruncation; with allowTruncation true the tail of the
// message is dropped and cannot be recovered.
func AddPadding(message []byte, size PaddedDataSize, allowTruncation bool) ([]byte, error) {
	return padding.Encode(message, size, allowTruncation)
}

// RemovePadding recovers the exact payload from a padded block. A block
// whose length or padding indicator is inconsistent with the size class
// fails with ErrMalformedBlock.
func RemovePadding(block []byte, size PaddedDataSize) ([]byte, error) {
	return padding.Decode(block, size)
}

// PaddedEncode serializes a record with the block serializer and encodes
// the result into a fixed-size padded block. Records are never silently
// truncated: one that does not fit the block capacity fails with
// ErrTruncation.
func (s *Serializer) PaddedEncode(v any, size PaddedDataSize) ([]byte, error) {
	if v == nil {
		return nil, ErrNilPointer
	}
	raw, err := s.block.Serialize(v)
	if err != nil {
		return nil, err
	}
	return padding.Encode(raw, size, false)
}

// PaddedDecode recovers a record from a fixed-size padded block produced
// by PaddedEncode.
func (s *Serializer) PaddedDecode(out any, block []byte, size PaddedDataSize) error {
	if out == nil {
		return ErrNilPointer
	}
	raw, err := padding.Decode(block, size)
	if err != nil {
		return err
	}
	return s.block.Deserialize(raw, out)
}
