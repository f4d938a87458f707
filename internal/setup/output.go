package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/voteforge/electionkit"
	"github.com/voteforge/electionkit/internal/ledger"
)

const (
	contextFileName   = "context"
	constantsFileName = "constants"
	manifestFileName  = "manifest"
	privateSubDir     = "private"
)

// guardianPrivateKey is the document form of escrowed or locally written
// guardian key material.
type guardianPrivateKey struct {
	GuardianID string                 `json:"guardian_id"`
	SecretKey  electionkit.BigInteger `json:"secret_key"`
}

// OutputSetupFilesStep writes the election record files produced by the
// setup workflow and records the run in the ceremony ledger.
type OutputSetupFilesStep struct {
	ser      *electionkit.Serializer
	keyStore electionkit.KeyStore
	logger   *zap.Logger
}

// NewOutputSetupFilesStep builds the output step. keyStore may be nil, in
// which case guardian private keys are written under a private/
// subdirectory of the output directory instead of being escrowed.
func NewOutputSetupFilesStep(ser *electionkit.Serializer, keyStore electionkit.KeyStore, logger *zap.Logger) *OutputSetupFilesStep {
	return &OutputSetupFilesStep{ser: ser, keyStore: keyStore, logger: logger}
}

// Output writes context, constants, the manifest, and per-guardian records
// into the output directory. Each guardian record is written both as a
// JSON document and as a fixed 512-byte padded block, and the completed
// run is appended to the ceremony ledger.
func (s *OutputSetupFilesStep) Output(ctx context.Context, inputs Inputs, guardians []Guardian, results BuildResults, ledgerPath string) error {
	if _, err := s.ser.ToFile(results.Context, contextFileName, inputs.OutDir); err != nil {
		return err
	}
	if _, err := s.ser.ToFile(results.Constants, constantsFileName, inputs.OutDir); err != nil {
		return err
	}
	if _, err := s.ser.ToFile(inputs.Manifest, manifestFileName, inputs.OutDir); err != nil {
		return err
	}

	for _, guardian := range guardians {
		if err := s.writeGuardian(ctx, guardian, inputs.OutDir); err != nil {
			return err
		}
	}

	if err := s.recordRun(ctx, inputs, results, ledgerPath); err != nil {
		return err
	}

	s.logger.Info("wrote election record",
		zap.String("out_dir", inputs.OutDir),
		zap.Int("guardian_count", len(guardians)),
	)
	return nil
}

func (s *OutputSetupFilesStep) writeGuardian(ctx context.Context, guardian Guardian, outDir string) error {
	name := fmt.Sprintf("guardian_%d", guardian.Record.SequenceOrder)

	if _, err := s.ser.ToFile(guardian.Record, name, outDir); err != nil {
		return err
	}

	block, err := s.ser.PaddedEncode(guardian.Record, electionkit.Bytes512)
	if err != nil {
		return err
	}
	blockPath := filepath.Join(outDir, name+".bin")
	if err := os.WriteFile(blockPath, block, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", blockPath, err)
	}

	return s.writePrivateKey(ctx, guardian, outDir)
}

func (s *OutputSetupFilesStep) writePrivateKey(ctx context.Context, guardian Guardian, outDir string) error {
	if s.keyStore != nil {
		if err := s.keyStore.StoreGuardianKey(ctx, guardian.Record.GuardianID, guardian.PrivateKey); err != nil {
			return err
		}
		s.logger.Info("escrowed guardian private key",
			zap.String("guardian_id", guardian.Record.GuardianID))
		return nil
	}

	secretKey, err := electionkit.ParseBigInteger(fmt.Sprintf("%X", []byte(guardian.PrivateKey)))
	if err != nil {
		return err
	}
	doc := guardianPrivateKey{
		GuardianID: guardian.Record.GuardianID,
		SecretKey:  secretKey,
	}

	privateDir := filepath.Join(outDir, privateSubDir)
	name := fmt.Sprintf("guardian_%d_private", guardian.Record.SequenceOrder)
	path, err := s.ser.ToFile(doc, name, privateDir)
	if err != nil {
		return err
	}
	// Key material: tighten the permissions ToFile applied.
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("restrict permissions on %q: %w", path, err)
	}
	return nil
}

func (s *OutputSetupFilesStep) recordRun(ctx context.Context, inputs Inputs, results BuildResults, ledgerPath string) error {
	store, err := ledger.Open(ledgerPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.RecordRun(ctx, ledger.Record{
		ElectionScopeID: inputs.Manifest.ElectionScopeID,
		GuardianCount:   inputs.GuardianCount,
		Quorum:          inputs.Quorum,
		JointKeyHash:    string(results.Context.CommitmentHash),
	})
}
