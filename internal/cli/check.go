// internal/cli/check.go

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sshKeeper/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the key repository config and rewrite it sorted",
	Long: `Validates every descriptor in the key repository's config.json
(server names present, referenced identity files loadable as private
keys) and rewrites the file sorted by server name, keeping a .bak copy
of the original.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return err
	}
	if err := ctx.manager.Store().Check(); err != nil {
		return err
	}
	fmt.Println(ui.SuccessStyle.Render("Key repository config is valid."))
	return nil
}
