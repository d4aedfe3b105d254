// internal/cli/local.go

package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sshKeeper/internal/ui"
)

var (
	localListPattern string
	localListFull    bool
	localListJSON    bool
)

var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Inspect hosts in the local ssh config",
}

var localListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List hosts from the local ssh config",
	RunE:    runLocalList,
}

func init() {
	localListCmd.Flags().StringVarP(&localListPattern, "pattern", "p", "",
		"regex to filter host names")
	localListCmd.Flags().BoolVarP(&localListFull, "full", "v", false,
		"print full host blocks")
	localListCmd.Flags().BoolVar(&localListJSON, "json", false,
		"output JSON for scripting")

	localCmd.AddCommand(localListCmd)
	rootCmd.AddCommand(localCmd)
}

func runLocalList(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return err
	}

	re, err := compilePattern(localListPattern)
	if err != nil {
		return err
	}
	entries := filterEntries(ctx.entries, re)

	if localListJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode entries: %v", err)
		}
		fmt.Println(string(data))
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, []string{strconv.Itoa(i), entry.Name, summarizeEntry(entry)})
	}
	fmt.Println(ui.RenderTable([]string{"index", "name", "summary"}, rows))

	if localListFull {
		for _, entry := range entries {
			block, err := entry.Render(0)
			if err != nil {
				return err
			}
			fmt.Println(ui.HeaderStyle.Render(entry.Name))
			fmt.Println(block)
		}
	}
	return nil
}
