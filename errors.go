package electionkit

import (
	"github.com/voteforge/electionkit/internal/ekerr"
)

var (
	// Padding errors
	ErrTruncation     = ekerr.ErrTruncation
	ErrMalformedBlock = ekerr.ErrMalformedBlock

	// Serialization errors
	ErrParse           = ekerr.ErrParse
	ErrUnsupportedType = ekerr.ErrUnsupportedType

	// Configuration and usage errors
	ErrInvalidConfiguration = ekerr.ErrInvalidConfiguration
	ErrNilPointer           = ekerr.ErrNilPointer

	// Provider errors
	ErrSecretStorageUnavailable = ekerr.ErrSecretStorageUnavailable
)
