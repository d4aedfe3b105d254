// internal/cli/add.go

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sshKeeper/internal/manager"
	"sshKeeper/internal/models"
	"sshKeeper/internal/ui"
)

var (
	addEndpointID     int
	addAuthID         int
	addNonInteractive bool
	addDryRun         bool
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a server from the key repository to the local ssh config",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().IntVar(&addEndpointID, "endpoint-id", -1,
		"endpoint index to use (see 'skm remote show')")
	addCmd.Flags().IntVar(&addAuthID, "auth-id", -1,
		"authentication index to use (see 'skm remote show')")
	addCmd.Flags().BoolVar(&addNonInteractive, "non-interactive", false,
		"fail instead of prompting when multiple alternatives exist")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false,
		"preview the generated host block without writing files")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	ctx, err := newAppContext()
	if err != nil {
		return err
	}
	if err := ctx.ensureRemoteLoaded(); err != nil {
		return err
	}

	for _, entry := range ctx.entries {
		if entry.Name == name {
			return fmt.Errorf("%w: %s", manager.ErrDuplicateHost, name)
		}
	}

	desc, ok := ctx.manager.Store().Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", manager.ErrUnknownServer, name)
	}

	endpointID, err := chooseIndex("endpoint", addEndpointID, endpointAlternatives(desc), name)
	if err != nil {
		return err
	}
	authID, err := chooseIndex("authentication", addAuthID, authAlternatives(desc), name)
	if err != nil {
		return err
	}

	entry, err := ctx.manager.GenerateHostConfig(name, endpointID, authID)
	if err != nil {
		return err
	}

	if addDryRun {
		block, err := entry.Render(0)
		if err != nil {
			return err
		}
		fmt.Println("Dry run: generated host block")
		fmt.Println(block)
		return nil
	}

	if err := ctx.manager.CopyIdentityFile(entry); err != nil {
		return err
	}
	entries := append(ctx.entries, entry)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	if err := ctx.manager.WriteConfig(entries, true); err != nil {
		return err
	}

	slog.Debug("host added", "name", name, "endpoint", endpointID, "auth", authID)
	fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("Added %q to ssh config.", name)))
	return nil
}

// chooseIndex resolves the alternative to use: an explicit flag wins,
// single (or no) alternatives are auto-selected, and multiple ones open
// the picker when a terminal is attached.
func chooseIndex(kind string, provided int, alts []ui.Alternative, name string) (int, error) {
	if provided >= 0 {
		if len(alts) == 0 {
			return 0, fmt.Errorf("server %q has no %s alternatives", name, kind)
		}
		if provided >= len(alts) {
			return 0, fmt.Errorf("%s index out of range, valid range: 0-%d", kind, len(alts)-1)
		}
		return provided, nil
	}
	if len(alts) <= 1 {
		return 0, nil
	}
	if addNonInteractive || !term.IsTerminal(int(os.Stdin.Fd())) {
		return 0, fmt.Errorf("server %q has %d %s alternatives, use --endpoint-id/--auth-id", name, len(alts), kind)
	}
	return ui.PickAlternative(fmt.Sprintf("Select %s for %s", kind, name), alts)
}

func endpointAlternatives(desc *models.HostDescriptor) []ui.Alternative {
	alts := make([]ui.Alternative, 0, len(desc.Endpoint))
	for _, ep := range desc.Endpoint {
		label := ep.HostName
		if p := ep.Port.Int(); p != nil {
			label = label + ":" + strconv.Itoa(*p)
		}
		alts = append(alts, ui.Alternative{Label: label, Details: ep.Comment})
	}
	return alts
}

func authAlternatives(desc *models.HostDescriptor) []ui.Alternative {
	alts := make([]ui.Alternative, 0, len(desc.Authentication))
	for _, auth := range desc.Authentication {
		label := auth.User
		if auth.IdentityFile != "" {
			label = label + " (" + auth.IdentityFile + ")"
		}
		alts = append(alts, ui.Alternative{Label: label, Details: auth.Comment})
	}
	return alts
}
