package electionkit

import "context"

// KeyStore escrows guardian private key material outside the election
// record directory. Implementations live under providers/secrets; the
// setup workflow treats the store as optional and writes key files locally
// when none is configured.
type KeyStore interface {
	// StoreGuardianKey stores the private key material for a guardian.
	// Storing again under the same identifier replaces (or versions,
	// depending on the backend) the previous material.
	StoreGuardianKey(ctx context.Context, guardianID string, key []byte) error

	// RetrieveGuardianKey returns the private key material previously
	// stored for a guardian.
	RetrieveGuardianKey(ctx context.Context, guardianID string) ([]byte, error)
}
