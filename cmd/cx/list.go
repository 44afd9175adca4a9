package main

import (
	"context"
	"encoding/json"
	"io"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"

	"github.com/nnnkkk7/claude-extend/host"
	"github.com/nnnkkk7/claude-extend/registry"
	"github.com/nnnkkk7/claude-extend/types"
	"github.com/nnnkkk7/claude-extend/ui"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available MCP tools",
	Long: `Display every tool in the registry with its installed state.

Tools whose prerequisite executable is missing from PATH are flagged
with the remediation hint from the registry.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}

func runList(cmd *cobra.Command, _ []string) error {
	a := newApp(cmd.ErrOrStderr())
	defer a.close()

	rows := toolStatuses(cmd.Context(), a.reg)
	if listJSON {
		return outputListJSON(cmd.OutOrStdout(), rows)
	}
	ui.RenderToolList(cmd.OutOrStdout(), rows)
	return nil
}

// toolStatuses joins the registry with the host listing, in registry order.
func toolStatuses(ctx context.Context, reg *registry.Registry) []ui.ToolStatus {
	installed := mapset.NewSet(reg.InstalledTools(ctx)...)

	servers := make(map[string]types.InstalledServer)
	for _, s := range host.ParseList(reg.InstalledOutput(ctx)) {
		servers[s.Name] = s
	}

	tools := reg.ListTools()
	rows := make([]ui.ToolStatus, len(tools))
	for i := range tools {
		rows[i] = ui.ToolStatus{
			Tool:             tools[i],
			Installed:        installed.Contains(tools[i].Name),
			PrerequisitesMet: reg.CheckPrerequisites(tools[i]),
			Server:           servers[tools[i].Name],
		}
	}
	return rows
}

type listOutput struct {
	Tools     []toolOutput `json:"tools"`
	Total     int          `json:"total"`
	Installed int          `json:"installed"`
}

type toolOutput struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	Prerequisite     string `json:"prerequisite"`
	Installed        bool   `json:"installed"`
	PrerequisitesMet bool   `json:"prerequisitesMet"`
}

func buildListOutput(rows []ui.ToolStatus) listOutput {
	output := listOutput{
		Tools: make([]toolOutput, len(rows)),
		Total: len(rows),
	}
	for i, r := range rows {
		if r.Installed {
			output.Installed++
		}
		output.Tools[i] = toolOutput{
			Name:             r.Tool.Name,
			Description:      r.Tool.Description,
			Prerequisite:     r.Tool.Prerequisite,
			Installed:        r.Installed,
			PrerequisitesMet: r.PrerequisitesMet,
		}
	}
	return output
}

func outputListJSON(w io.Writer, rows []ui.ToolStatus) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildListOutput(rows))
}
