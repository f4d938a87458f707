package electionkit

const (
	// FileExtension is appended to record names by ConstructPath and ToFile.
	FileExtension = "json"

	// Environment variable names for configuration loading
	EnvOutDir       = "ELECTIONKIT_OUT_DIR"
	EnvKeyStore     = "ELECTIONKIT_KEY_STORE"
	EnvS3Bucket     = "ELECTIONKIT_S3_BUCKET"
	EnvVaultMount   = "ELECTIONKIT_VAULT_MOUNT"
	EnvLedgerName   = "ELECTIONKIT_LEDGER_FILENAME"

	// Defaults applied by Config.Validate
	DefaultOutDir     = "election_record"
	DefaultLedgerName = "ceremony.db"
	DefaultVaultMount = "secret"
)

// VaultKeyPathTemplate is the KV v2 path template for guardian key escrow.
// The two placeholders are the mount point and the guardian identifier.
const VaultKeyPathTemplate = "%s/data/electionkit/%s/key"
