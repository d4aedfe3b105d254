// internal/cli/remote.go

package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sshKeeper/internal/models"
	"sshKeeper/internal/ui"
)

var (
	remoteListPattern string
	remoteListFull    bool
	remoteListJSON    bool
	remoteShowJSON    bool
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Inspect servers described in the key repository",
}

var remoteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List server names from the key repository",
	RunE:    runRemoteList,
}

var remoteShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one server's endpoint and authentication alternatives",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoteShow,
}

func init() {
	remoteListCmd.Flags().StringVarP(&remoteListPattern, "pattern", "p", "",
		"regex to filter server names")
	remoteListCmd.Flags().BoolVarP(&remoteListFull, "full", "v", false,
		"print full descriptor entries")
	remoteListCmd.Flags().BoolVar(&remoteListJSON, "json", false,
		"output JSON for scripting")
	remoteShowCmd.Flags().BoolVar(&remoteShowJSON, "json", false,
		"output JSON for scripting")

	remoteCmd.AddCommand(remoteListCmd)
	remoteCmd.AddCommand(remoteShowCmd)
	rootCmd.AddCommand(remoteCmd)
}

func runRemoteList(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return err
	}
	if err := ctx.ensureRemoteLoaded(); err != nil {
		return err
	}

	re, err := compilePattern(remoteListPattern)
	if err != nil {
		return err
	}
	names := filterNames(ctx.manager.Store().Names(), re)

	if remoteListJSON {
		var payload interface{} = names
		if remoteListFull {
			byName := make(map[string]*models.HostDescriptor, len(names))
			for _, name := range names {
				desc, _ := ctx.manager.Store().Get(name)
				byName[name] = desc
			}
			payload = byName
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode descriptors: %v", err)
		}
		fmt.Println(string(data))
		return nil
	}

	rows := make([][]string, 0, len(names))
	for i, name := range names {
		rows = append(rows, []string{strconv.Itoa(i), name})
	}
	fmt.Println(ui.RenderTable([]string{"index", "name"}, rows))

	if remoteListFull {
		for _, name := range names {
			desc, _ := ctx.manager.Store().Get(name)
			fmt.Println(ui.HeaderStyle.Render(name))
			printDescriptor(desc)
		}
	}
	return nil
}

func runRemoteShow(cmd *cobra.Command, args []string) error {
	ctx, err := newAppContext()
	if err != nil {
		return err
	}
	if err := ctx.ensureRemoteLoaded(); err != nil {
		return err
	}

	name := args[0]
	desc, ok := ctx.manager.Store().Get(name)
	if !ok {
		return fmt.Errorf("server %q not found, run 'skm remote list' to see available names", name)
	}

	if remoteShowJSON {
		data, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode descriptor: %v", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Server: %s\n", name)
	if desc.Comment != "" {
		fmt.Println(ui.DescriptionStyle.Render(desc.Comment))
	}
	printDescriptor(desc)
	return nil
}

func printDescriptor(desc *models.HostDescriptor) {
	fmt.Println(ui.RenderTable(
		[]string{"index", "HostName", "Port", "Comment"},
		endpointRows(desc.Endpoint),
	))
	fmt.Println(ui.RenderTable(
		[]string{"index", "User", "IdentityFile", "Comment"},
		authRows(desc.Authentication),
	))
	if len(desc.ExtraConfig) > 0 {
		rows := make([][]string, 0, len(desc.ExtraConfig))
		for i, extra := range desc.ExtraConfig {
			rows = append(rows, []string{strconv.Itoa(i), extra.Key, extra.Value, extra.Comment})
		}
		fmt.Println(ui.RenderTable([]string{"index", "Key", "Value", "Comment"}, rows))
	}
}

func endpointRows(endpoints []models.EndpointRecord) [][]string {
	rows := make([][]string, 0, len(endpoints))
	for i, ep := range endpoints {
		port := ""
		if p := ep.Port.Int(); p != nil {
			port = strconv.Itoa(*p)
		}
		rows = append(rows, []string{strconv.Itoa(i), ep.HostName, port, ep.Comment})
	}
	return rows
}

func authRows(auths []models.AuthRecord) [][]string {
	rows := make([][]string, 0, len(auths))
	for i, auth := range auths {
		rows = append(rows, []string{strconv.Itoa(i), auth.User, auth.IdentityFile, auth.Comment})
	}
	return rows
}
