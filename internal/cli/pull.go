// internal/cli/pull.go

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sshKeeper/internal/ui"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Clone or update the key repository",
	RunE:  runPull,
}

func init() {
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return err
	}
	if !ctx.remoteLoaded {
		if err := ctx.manager.Store().Pull(); err != nil {
			return err
		}
	}
	fmt.Println(ui.SuccessStyle.Render("Pulled remote ssh key repository."))
	return nil
}
