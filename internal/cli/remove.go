// internal/cli/remove.go

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sshKeeper/internal/ui"
)

var (
	removeYes    bool
	removeDryRun bool
)

var removeCmd = &cobra.Command{
	Use:     "remove <name-or-index>",
	Aliases: []string{"rm"},
	Short:   "Remove a host from the local ssh config",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false,
		"skip confirmation")
	removeCmd.Flags().BoolVar(&removeDryRun, "dry-run", false,
		"preview without writing files")

	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return err
	}

	targetIdx := -1
	for i, entry := range ctx.entries {
		if entry.Name == args[0] {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		if i, err := strconv.Atoi(args[0]); err == nil && i >= 0 && i < len(ctx.entries) {
			targetIdx = i
		}
	}
	if targetIdx < 0 {
		return fmt.Errorf("no host named or indexed %q in local ssh config", args[0])
	}

	target := ctx.entries[targetIdx]

	if !removeYes {
		confirmed, err := ui.PromptConfirmation(fmt.Sprintf("Remove %q from ssh config?", target.Name))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Canceled.")
			return nil
		}
	}

	if removeDryRun {
		fmt.Printf("Dry run: would remove %q.\n", target.Name)
		return nil
	}

	if err := ctx.manager.DeleteIdentityFile(target); err != nil {
		return err
	}
	entries := append(ctx.entries[:targetIdx], ctx.entries[targetIdx+1:]...)
	if err := ctx.manager.WriteConfig(entries, true); err != nil {
		return err
	}

	fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("Removed %q.", target.Name)))
	return nil
}
