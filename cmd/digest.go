package cmd

import (
	"fmt"

	"bookledger/core/config"
	"bookledger/feature/digest"

	"github.com/spf13/cobra"
)

var saltFlag string

// digestCmd fingerprints the files of a folder.
var digestCmd = &cobra.Command{
	Use:   "digest <folder>",
	Short: "Compute the deterministic fingerprint of a folder's files",
	Long: `Digest hashes every regular file in the folder with SHA3-256,
orders the digests by their digit-product weight, and hashes the salted
concatenation. The fingerprint is printed to stdout.

Example:
  bookledger digest ./task_data --salt me@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runDigest,
}

func init() {
	digestCmd.Flags().StringVar(&saltFlag, "salt", "", "Override the configured digest salt")

	RootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	salt := cfg.Digest.Salt
	if saltFlag != "" {
		salt = saltFlag
	}

	fingerprint, err := digest.Folder(args[0], salt)
	if err != nil {
		return err
	}

	// The fingerprint is the command's output, not a log line.
	fmt.Println(fingerprint)
	return nil
}
