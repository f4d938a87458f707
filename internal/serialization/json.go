package serialization

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/voteforge/electionkit/internal/ekerr"
)

// indent is the fixed indentation unit of the document format. The textual
// layout is stable across versions so callers can compare and fingerprint
// documents, but only round-trip fidelity is part of the contract.
const indent = "  "

// JSONSerializer implements Serializer using the encoding/json package,
// producing the canonical document form: UTF-8, two-space indentation,
// struct field order. Types with a non-structural JSON mapping implement
// json.Marshaler/json.Unmarshaler themselves, so containers compose by
// delegating to their elements.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return nil, classifyMarshalError(err)
	}
	return data, nil
}

// Deserialize parses data into v. Unknown fields in the document are
// ignored; malformed JSON fails with ErrParse and a document whose shape
// cannot be mapped onto v fails with ErrUnsupportedType.
func (JSONSerializer) Deserialize(data []byte, v any) error {
	if v == nil {
		return ekerr.ErrNilPointer
	}
	if err := json.Unmarshal(data, v); err != nil {
		return classifyUnmarshalError(err)
	}
	return nil
}

func classifyMarshalError(err error) error {
	var unsupportedType *json.UnsupportedTypeError
	var unsupportedValue *json.UnsupportedValueError
	if errors.As(err, &unsupportedType) || errors.As(err, &unsupportedValue) {
		return fmt.Errorf("%w: %v", ekerr.ErrUnsupportedType, err)
	}
	return err
}

func classifyUnmarshalError(err error) error {
	// Errors raised by a type's own UnmarshalJSON are already classified.
	if errors.Is(err, ekerr.ErrParse) || errors.Is(err, ekerr.ErrUnsupportedType) {
		return err
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %v", ekerr.ErrUnsupportedType, err)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ekerr.ErrParse, err)
	}
	return fmt.Errorf("%w: %v", ekerr.ErrParse, err)
}
