package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voteforge/electionkit"
	"github.com/voteforge/electionkit/internal/setup"
	awsstore "github.com/voteforge/electionkit/providers/secrets/aws"
	"github.com/voteforge/electionkit/providers/secrets/hashicorp"
)

// newSetupCmd creates the setup command
func newSetupCmd() *cobra.Command {
	var (
		guardianCount int
		quorum        int
		manifestPath  string
		outDir        string
		configPath    string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run an automated key ceremony and write the election record files",
		Long: `Runs an automated key ceremony for the given number of guardians and
produces the output files such as context, constants, and guardian keys.
Existing files in the output directory will be overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, guardianCount, quorum, manifestPath, outDir, configPath)
		},
	}

	cmd.Flags().IntVar(&guardianCount, "guardian-count", 0,
		"number of guardians that will participate in the key ceremony and tally")
	cmd.Flags().IntVar(&quorum, "quorum", 0,
		"minimum number of guardians required to show up to the tally")
	cmd.Flags().StringVar(&manifestPath, "manifest", "",
		"location of an election manifest")
	cmd.Flags().StringVar(&outDir, "out", "",
		"directory into which the output files are placed")
	cmd.Flags().StringVar(&configPath, "config", "",
		"optional YAML configuration file")

	_ = cmd.MarkFlagRequired("guardian-count")
	_ = cmd.MarkFlagRequired("quorum")
	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}

func runSetup(cmd *cobra.Command, guardianCount, quorum int, manifestPath, outDir, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()

	ser, err := electionkit.NewSerializer()
	if err != nil {
		return err
	}

	keyStore, err := buildKeyStore(cmd, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	inputs, err := setup.NewInputRetrievalStep(ser, logger).
		GetInputs(guardianCount, quorum, manifestPath, cfg.OutDir)
	if err != nil {
		return err
	}

	guardians, jointKey, err := setup.NewKeyCeremonyStep(logger).
		RunKeyCeremony(inputs.GuardianCount)
	if err != nil {
		return err
	}

	results, err := setup.NewElectionBuilderStep(ser, logger).
		BuildElection(inputs, jointKey)
	if err != nil {
		return err
	}

	ledgerPath := filepath.Join(inputs.OutDir, cfg.LedgerFilename)
	if err := setup.NewOutputSetupFilesStep(ser, keyStore, logger).
		Output(ctx, inputs, guardians, results, ledgerPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Election record written to %s\n", inputs.OutDir)
	return nil
}

func loadConfig(configPath string) (electionkit.Config, error) {
	if configPath != "" {
		return electionkit.LoadConfigFromFile(configPath)
	}
	return electionkit.LoadConfigFromEnvironment()
}

func buildKeyStore(cmd *cobra.Command, cfg electionkit.Config) (electionkit.KeyStore, error) {
	switch cfg.KeyStore {
	case "vault":
		return hashicorp.NewKVStore(cfg.VaultMount)
	case "s3":
		return awsstore.NewS3Store(cmd.Context(), cfg.S3Bucket)
	default:
		return nil, nil
	}
}
