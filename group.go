package electionkit

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// BigInteger is an arbitrary-precision non-negative integer whose
// serialized form is an uppercase, even-length hexadecimal string.
type BigInteger string

// NewBigInteger builds a BigInteger from a big.Int.
func NewBigInteger(v *big.Int) (BigInteger, error) {
	if v == nil {
		return "", ErrNilPointer
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("%w: negative value %s cannot be a BigInteger", ErrUnsupportedType, v)
	}
	return BigInteger(canonicalHex(v.Text(16))), nil
}

// ParseBigInteger normalizes a hexadecimal string into canonical form.
func ParseBigInteger(s string) (BigInteger, error) {
	normalized, err := normalizeHex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid big integer: %v", ErrUnsupportedType, s, err)
	}
	return BigInteger(normalized), nil
}

// Int returns the numeric value.
func (b BigInteger) Int() (*big.Int, error) {
	v, ok := new(big.Int).SetString(string(b), 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a valid big integer", ErrUnsupportedType, string(b))
	}
	return v, nil
}

func (b *BigInteger) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: big integer must be a JSON string: %v", ErrUnsupportedType, err)
	}
	parsed, err := ParseBigInteger(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ElementModP is a hex-encoded element of the large prime-order group used
// by election records. This package treats it purely as a serialization
// type; its cryptographic interpretation belongs to the caller.
type ElementModP string

// ParseElementModP normalizes a hexadecimal string into canonical form.
func ParseElementModP(s string) (ElementModP, error) {
	normalized, err := normalizeHex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid element mod p: %v", ErrUnsupportedType, s, err)
	}
	return ElementModP(normalized), nil
}

func (e *ElementModP) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: element mod p must be a JSON string: %v", ErrUnsupportedType, err)
	}
	parsed, err := ParseElementModP(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// ElementModQ is a hex-encoded element of the small prime-order field,
// also used for hash outputs.
type ElementModQ string

// ParseElementModQ normalizes a hexadecimal string into canonical form.
func ParseElementModQ(s string) (ElementModQ, error) {
	normalized, err := normalizeHex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid element mod q: %v", ErrUnsupportedType, s, err)
	}
	return ElementModQ(normalized), nil
}

func (e *ElementModQ) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: element mod q must be a JSON string: %v", ErrUnsupportedType, err)
	}
	parsed, err := ParseElementModQ(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Fingerprint digests serialized data with SHA3-256 and returns the result
// as an ElementModQ. Callers use it to compare and reference canonical
// documents by value.
func Fingerprint(raw ...[]byte) ElementModQ {
	h := sha3.New256()
	for _, part := range raw {
		h.Write(part)
	}
	return ElementModQ(strings.ToUpper(hex.EncodeToString(h.Sum(nil))))
}

// normalizeHex validates s as hexadecimal and returns the canonical
// uppercase, even-length form.
func normalizeHex(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("empty string")
	}
	canonical := canonicalHex(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if _, err := hex.DecodeString(canonical); err != nil {
		return "", err
	}
	return canonical, nil
}

func canonicalHex(s string) string {
	s = strings.ToUpper(s)
	if len(s)%2 != 0 {
		s = "0" + s
	}
	return s
}
