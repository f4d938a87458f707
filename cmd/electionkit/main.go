package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	// A .env file is optional; environment variables win when both exist.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates and configures the root command
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "electionkit",
		Short: "Election record setup and serialization tooling",
		Long: `electionkit runs an automated key ceremony and produces the files
necessary to encrypt ballots, decrypt an election, and produce an election record.`,
	}

	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
