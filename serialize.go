package electionkit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/voteforge/electionkit/internal/serialization"
)

// Serializer converts election records to and from the canonical JSON
// document format. It carries the coercion registry and the block
// serializer as explicit state, built once by NewSerializer; a Serializer
// is immutable afterwards and safe for concurrent use.
type Serializer struct {
	registry *Registry
	document serialization.Serializer
	block    serialization.Serializer
}

// NewSerializer builds a serializer with the default registry, the JSON
// document format, and CBOR for padded block payloads. Options override
// the defaults.
func NewSerializer(opts ...SerializerOption) (*Serializer, error) {
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}
	block, err := serialization.NewCBORSerializer()
	if err != nil {
		return nil, err
	}

	s := &Serializer{
		registry: registry,
		document: serialization.JSONSerializer{},
		block:    block,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Registry returns the coercion registry the serializer was built with.
func (s *Serializer) Registry() *Registry {
	return s.registry
}

// ToRaw serializes a record to canonical JSON document text.
func (s *Serializer) ToRaw(v any) ([]byte, error) {
	if v == nil {
		return nil, ErrNilPointer
	}
	return s.document.Serialize(v)
}

// FromRaw deserializes document text into out, which must be a pointer to
// the target record type. Unknown fields in the document are ignored.
// Malformed text fails with ErrParse; a document that cannot be mapped
// onto the target shape fails with ErrUnsupportedType.
func (s *Serializer) FromRaw(out any, raw []byte) error {
	if out == nil {
		return ErrNilPointer
	}
	return s.document.Deserialize(raw, out)
}

// ToWriter serializes a record and writes the document to w.
func (s *Serializer) ToWriter(v any, w io.Writer) error {
	raw, err := s.ToRaw(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// FromReader reads a whole document from r and deserializes it into out.
func (s *Serializer) FromReader(out any, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	return s.FromRaw(out, raw)
}

// ToFile serializes a record into dir/name.json, creating the directory
// if it does not exist, and returns the written path.
func (s *Serializer) ToFile(v any, name string, dir string) (string, error) {
	raw, err := s.ToRaw(v)
	if err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory %q: %w", dir, err)
		}
	}
	path := ConstructPath(name, dir)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write %q: %w", path, err)
	}
	return path, nil
}

// FromFile deserializes the document at path into out.
func (s *Serializer) FromFile(out any, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	return s.FromRaw(out, raw)
}

// FromListInFile deserializes a document holding a JSON array of records
// of type T.
func FromListInFile[T any](s *Serializer, path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return fromList[T](s, raw)
}

// FromListInReader deserializes a JSON array of records of type T read
// from r.
func FromListInReader[T any](s *Serializer, r io.Reader) ([]T, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return fromList[T](s, raw)
}

func fromList[T any](s *Serializer, raw []byte) ([]T, error) {
	var list []T
	if err := s.FromRaw(&list, raw); err != nil {
		return nil, err
	}
	return list, nil
}

// ConstructPath joins a record name and directory into the conventional
// <name>.json path.
func ConstructPath(name string, dir string) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s", name, FileExtension))
}
