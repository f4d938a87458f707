// Package ekerr defines the sentinel errors shared by the electionkit
// internal packages. The root package re-exports the ones that are part
// of the public API.
package ekerr

import "errors"

var (
	// Padding errors
	ErrTruncation     = errors.New("padded data exceeds allowed block capacity")
	ErrMalformedBlock = errors.New("malformed padded block")

	// Serialization errors
	ErrParse           = errors.New("malformed JSON document")
	ErrUnsupportedType = errors.New("unsupported type")

	// Configuration and usage errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrNilPointer           = errors.New("nil pointer encountered")

	// Provider errors
	ErrSecretStorageUnavailable = errors.New("secret storage unavailable")
)
