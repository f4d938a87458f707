package electionkit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for the setup workflow.
//
// This struct contains only data, no behavior. Configuration can come from
// a YAML file, environment variables, command-line flags, or code, and is
// passed explicitly to the workflow.
type Config struct {
	// OutDir is the directory election record files are written into.
	// Existing files are overwritten. Default: election_record.
	OutDir string `yaml:"out_dir"`

	// KeyStore selects the guardian key escrow backend: "vault", "s3", or
	// empty for local key files only.
	KeyStore string `yaml:"key_store"`

	// S3Bucket is the bucket used when KeyStore is "s3".
	S3Bucket string `yaml:"s3_bucket"`

	// VaultMount is the KV v2 mount point used when KeyStore is "vault".
	// Default: secret.
	VaultMount string `yaml:"vault_mount"`

	// LedgerFilename is the name of the SQLite ceremony ledger created in
	// OutDir. Default: ceremony.db.
	LedgerFilename string `yaml:"ledger_filename"`
}

// Validate checks the configuration and applies defaults for optional
// fields.
func (c *Config) Validate() error {
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
	if c.VaultMount == "" {
		c.VaultMount = DefaultVaultMount
	}
	if c.LedgerFilename == "" {
		c.LedgerFilename = DefaultLedgerName
	}

	switch c.KeyStore {
	case "", "vault", "s3":
	default:
		return fmt.Errorf("%w: unknown key store %q (want \"vault\", \"s3\" or empty)",
			ErrInvalidConfiguration, c.KeyStore)
	}
	if c.KeyStore == "s3" && c.S3Bucket == "" {
		return fmt.Errorf("%w: s3 key store requires a bucket", ErrInvalidConfiguration)
	}
	return nil
}

// LoadConfigFromFile reads a YAML configuration file, validates it and
// applies defaults.
func LoadConfigFromFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse config %q: %v", ErrInvalidConfiguration, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFromEnvironment reads configuration from environment
// variables, validates it and applies defaults. Unset variables fall back
// to their defaults; there are no required variables.
func LoadConfigFromEnvironment() (Config, error) {
	cfg := Config{
		OutDir:         os.Getenv(EnvOutDir),
		KeyStore:       os.Getenv(EnvKeyStore),
		S3Bucket:       os.Getenv(EnvS3Bucket),
		VaultMount:     os.Getenv(EnvVaultMount),
		LedgerFilename: os.Getenv(EnvLedgerName),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
