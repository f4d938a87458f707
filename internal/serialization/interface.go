// Package serialization converts election records to and from their
// serialized byte forms. The JSON serializer produces the canonical
// human-readable document format; the CBOR serializer produces a compact
// binary form suitable for fixed-size padded blocks.
package serialization

// Serializer defines an interface for converting values to and from byte
// arrays. Implementations offer different trade-offs: the JSON form is the
// stable document format of record, while compact forms trade readability
// for size.
type Serializer interface {
	// Serialize takes any value and returns its byte representation and an
	// error if serialization fails.
	Serialize(v any) ([]byte, error)

	// Deserialize takes a byte array and a pointer to the target value
	// and populates it with the deserialized data.
	Deserialize(data []byte, v any) error
}
