package electionkit

import (
	"fmt"
	"time"

	"github.com/voteforge/electionkit/internal/serialization"
)

// Codec is a named pair of parse and format rules for one type without an
// unambiguous structural JSON mapping.
type Codec = serialization.Codec

// Registry is the closed, constructed-once set of codecs consulted when
// coercing untyped document values. It is read-only after construction and
// safe for concurrent use.
type Registry = serialization.Registry

// Canonical type identifiers for the registered codecs.
const (
	TypeTimestamp         = "timestamp"
	TypeBigInteger        = "big-integer"
	TypeElementModP       = "element-mod-p"
	TypeElementModQ       = "element-mod-q"
	TypeElectionType      = "election-type"
	TypeReportingUnitType = "reporting-unit-type"
	TypeVoteVariationType = "vote-variation-type"
	TypeSpecVersion       = "spec-version"
	TypeBallotBoxState    = "ballot-box-state"
	TypeProofUsage        = "proof-usage"
	TypeContestErrorType  = "contest-error-type"
)

// DefaultRegistry builds the registry of every supported domain type.
// The set is closed: adding a type means adding a codec here and its
// marshaling methods on the type itself.
func DefaultRegistry() (*Registry, error) {
	return serialization.NewRegistry(
		Codec{
			Name: TypeTimestamp,
			Parse: func(raw any) (any, error) {
				s, err := stringValue(TypeTimestamp, raw)
				if err != nil {
					return nil, err
				}
				return ParseTimestamp(s)
			},
			Format: func(v any) (any, error) {
				t, ok := v.(Timestamp)
				if !ok {
					return nil, formatError(TypeTimestamp, v)
				}
				return t.UTC().Format(time.RFC3339), nil
			},
		},
		Codec{
			Name: TypeBigInteger,
			Parse: func(raw any) (any, error) {
				s, err := stringValue(TypeBigInteger, raw)
				if err != nil {
					return nil, err
				}
				return ParseBigInteger(s)
			},
			Format: formatString[BigInteger](TypeBigInteger),
		},
		Codec{
			Name: TypeElementModP,
			Parse: func(raw any) (any, error) {
				s, err := stringValue(TypeElementModP, raw)
				if err != nil {
					return nil, err
				}
				return ParseElementModP(s)
			},
			Format: formatString[ElementModP](TypeElementModP),
		},
		Codec{
			Name: TypeElementModQ,
			Parse: func(raw any) (any, error) {
				s, err := stringValue(TypeElementModQ, raw)
				if err != nil {
					return nil, err
				}
				return ParseElementModQ(s)
			},
			Format: formatString[ElementModQ](TypeElementModQ),
		},
		enumCodec(TypeElectionType, func(s string) (ElectionType, bool) {
			t := ElectionType(s)
			return t, t.IsValid()
		}),
		enumCodec(TypeReportingUnitType, func(s string) (ReportingUnitType, bool) {
			t := ReportingUnitType(s)
			return t, t.IsValid()
		}),
		enumCodec(TypeVoteVariationType, func(s string) (VoteVariationType, bool) {
			t := VoteVariationType(s)
			return t, t.IsValid()
		}),
		enumCodec(TypeSpecVersion, func(s string) (SpecVersion, bool) {
			v := SpecVersion(s)
			return v, v.IsValid()
		}),
		enumCodec(TypeProofUsage, func(s string) (ProofUsage, bool) {
			u := ProofUsage(s)
			return u, u.IsValid()
		}),
		enumCodec(TypeContestErrorType, func(s string) (ContestErrorType, bool) {
			t := ContestErrorType(s)
			return t, t.IsValid()
		}),
		Codec{
			Name: TypeBallotBoxState,
			Parse: func(raw any) (any, error) {
				// JSON numbers decode as float64.
				n, ok := raw.(float64)
				if !ok {
					return nil, fmt.Errorf("%w: %s must be a JSON number, got %T",
						ErrUnsupportedType, TypeBallotBoxState, raw)
				}
				s := BallotBoxState(int(n))
				if !s.IsValid() {
					return nil, fmt.Errorf("%w: %v is not a valid %s", ErrUnsupportedType, raw, TypeBallotBoxState)
				}
				return s, nil
			},
			Format: func(v any) (any, error) {
				s, ok := v.(BallotBoxState)
				if !ok {
					return nil, formatError(TypeBallotBoxState, v)
				}
				return int(s), nil
			},
		},
	)
}

// enumCodec builds a codec for a string-valued enumeration with a closed
// value set.
func enumCodec[T ~string](name string, lookup func(string) (T, bool)) Codec {
	return Codec{
		Name: name,
		Parse: func(raw any) (any, error) {
			s, err := stringValue(name, raw)
			if err != nil {
				return nil, err
			}
			v, ok := lookup(s)
			if !ok {
				return nil, fmt.Errorf("%w: %q is not a valid %s", ErrUnsupportedType, s, name)
			}
			return v, nil
		},
		Format: formatString[T](name),
	}
}

func formatString[T ~string](name string) func(any) (any, error) {
	return func(v any) (any, error) {
		t, ok := v.(T)
		if !ok {
			return nil, formatError(name, v)
		}
		return string(t), nil
	}
}

func stringValue(name string, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a JSON string, got %T", ErrUnsupportedType, name, raw)
	}
	return s, nil
}

func formatError(name string, v any) error {
	return fmt.Errorf("%w: value of type %T is not a %s", ErrUnsupportedType, v, name)
}
