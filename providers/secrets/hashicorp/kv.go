// Package hashicorp implements guardian key escrow on HashiCorp Vault's
// KV v2 secrets engine.
package hashicorp

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/hashicorp/vault/api"

	"github.com/voteforge/electionkit"
)

// KVStore implements electionkit.KeyStore using Vault KV v2. Guardian key
// material is stored versioned, so re-running a ceremony keeps the history
// of previous escrows.
//
// The KV v2 engine must be enabled at the configured mount before use:
//
//	vault secrets enable -path=secret kv-v2
type KVStore struct {
	client *api.Client
	mount  string
}

// NewKVStore creates a KVStore against the given KV v2 mount point. The
// Vault client is configured from the standard VAULT_* environment
// variables (see createVaultClient).
func NewKVStore(mount string) (*KVStore, error) {
	if mount == "" {
		mount = electionkit.DefaultVaultMount
	}
	client, err := createVaultClient()
	if err != nil {
		return nil, err
	}
	return &KVStore{client: client, mount: mount}, nil
}

// storagePath returns the KV v2 path for a guardian. The "/data/" segment
// is required by the KV v2 API.
func (k *KVStore) storagePath(guardianID string) string {
	return fmt.Sprintf(electionkit.VaultKeyPathTemplate, k.mount, guardianID)
}

// StoreGuardianKey stores key material for a guardian. An existing entry
// is versioned, not overwritten.
func (k *KVStore) StoreGuardianKey(ctx context.Context, guardianID string, key []byte) error {
	if guardianID == "" {
		return fmt.Errorf("%w: guardian id must not be empty", electionkit.ErrInvalidConfiguration)
	}
	if len(key) == 0 {
		return fmt.Errorf("%w: key material must not be empty", electionkit.ErrInvalidConfiguration)
	}

	// KV v2 requires the payload to be wrapped in a "data" key.
	data := map[string]interface{}{
		"data": map[string]interface{}{
			"value": base64.StdEncoding.EncodeToString(key),
		},
	}

	if _, err := k.client.Logical().WriteWithContext(ctx, k.storagePath(guardianID), data); err != nil {
		return fmt.Errorf("%w: failed to store guardian key in Vault KV: %w",
			electionkit.ErrSecretStorageUnavailable, err)
	}
	return nil
}

// RetrieveGuardianKey returns the latest key material stored for a
// guardian.
func (k *KVStore) RetrieveGuardianKey(ctx context.Context, guardianID string) ([]byte, error) {
	secret, err := k.client.Logical().ReadWithContext(ctx, k.storagePath(guardianID))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read guardian key from Vault KV: %w",
			electionkit.ErrSecretStorageUnavailable, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("%w: no key stored for guardian %s",
			electionkit.ErrSecretStorageUnavailable, guardianID)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: invalid KV v2 secret format for guardian %s",
			electionkit.ErrSecretStorageUnavailable, guardianID)
	}
	encoded, ok := data["value"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: key value missing or invalid for guardian %s",
			electionkit.ErrSecretStorageUnavailable, guardianID)
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode guardian key: %w",
			electionkit.ErrSecretStorageUnavailable, err)
	}
	return key, nil
}
