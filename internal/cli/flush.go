// internal/cli/flush.go

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sshKeeper/internal/ui"
)

var (
	flushBackup bool
	flushDryRun bool
)

var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Rewrite the local ssh config from the parsed entries",
	Long: `Re-renders the local ssh config from what it currently parses to:
entries come out sorted by name, with canonical indentation and the
managed-file header. Useful after editing the file by hand.`,
	RunE: runFlush,
}

func init() {
	flushCmd.Flags().BoolVar(&flushBackup, "backup", true,
		"create a timestamped backup before replacing the ssh config")
	flushCmd.Flags().BoolVar(&flushDryRun, "dry-run", false,
		"preview without writing files")

	rootCmd.AddCommand(flushCmd)
}

func runFlush(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return err
	}

	if flushDryRun {
		fmt.Printf("Dry run: would rewrite ssh config with %d host entries.\n", len(ctx.entries))
		return nil
	}

	if err := ctx.manager.WriteConfig(ctx.entries, flushBackup); err != nil {
		return err
	}
	fmt.Println(ui.SuccessStyle.Render("Flushed ssh config with atomic write."))
	return nil
}
