// internal/cli/root.go

// Package cli defines the command tree of the skm binary.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFlag string
	autoPull   bool
	verbose    bool

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "skm",
	Short: "Maintain the local ssh config from a git-hosted key repository",
	Long: `skm keeps ~/.ssh/config in sync with a remote key repository.

The repository's config.json describes each server with one or more
endpoint and authentication alternatives; skm turns a chosen combination
into a concrete Host block and copies the referenced identity file into
place.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"path to the skm config file (default: <data root>/config.json)")
	rootCmd.PersistentFlags().BoolVar(&autoPull, "auto-pull", false,
		"sync the key repository before running the command")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"enable debug logging")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
