package electionkit

import (
	"fmt"

	"github.com/voteforge/electionkit/internal/serialization"
)

// SerializerOption configures a Serializer during construction.
type SerializerOption func(s *Serializer) error

// BlockFormat selects the serialized form used inside fixed-size padded
// blocks. The document format is always JSON; blocks default to CBOR
// because the compact form leaves more of the block capacity to the
// record.
type BlockFormat string

const (
	// BlockFormatCBOR stores canonical CBOR inside padded blocks.
	BlockFormatCBOR BlockFormat = "cbor"
	// BlockFormatJSON stores the JSON document form inside padded blocks.
	BlockFormatJSON BlockFormat = "json"
)

// IsValid reports whether the block format is supported.
func (f BlockFormat) IsValid() bool {
	switch f {
	case BlockFormatCBOR, BlockFormatJSON:
		return true
	default:
		return false
	}
}

// WithRegistry replaces the default coercion registry.
func WithRegistry(registry *Registry) SerializerOption {
	return func(s *Serializer) error {
		if registry == nil {
			return fmt.Errorf("%w: registry must not be nil", ErrInvalidConfiguration)
		}
		s.registry = registry
		return nil
	}
}

// WithBlockFormat selects the serialized form used by PaddedEncode and
// PaddedDecode.
func WithBlockFormat(format BlockFormat) SerializerOption {
	return func(s *Serializer) error {
		switch format {
		case BlockFormatCBOR:
			block, err := serialization.NewCBORSerializer()
			if err != nil {
				return err
			}
			s.block = block
		case BlockFormatJSON:
			s.block = serialization.JSONSerializer{}
		default:
			return fmt.Errorf("%w: unsupported block format %q", ErrInvalidConfiguration, format)
		}
		return nil
	}
}
