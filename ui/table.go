package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/nnnkkk7/claude-extend/types"
)

const (
	titleWidth      = 22
	maxCommandWidth = 60
)

// ToolStatus is one row of the tool list.
type ToolStatus struct {
	Tool             types.Tool
	Installed        bool
	PrerequisitesMet bool
	// Server is the host's listing entry for the tool; zero when not listed.
	Server types.InstalledServer
}

// RenderToolList renders every tool with its install state.
func RenderToolList(w io.Writer, rows []ToolStatus) {
	fmt.Fprintln(w, "🔧 Available MCP Tools")
	fmt.Fprintln(w, strings.Repeat("=", titleWidth))
	fmt.Fprintln(w)

	if len(rows) == 0 {
		fmt.Fprintln(w, "No tools available in registry.")
		return
	}

	installed := 0
	for i := range rows {
		status := dimColor.Sprint("⭕ AVAILABLE")
		if rows[i].Installed {
			status = successColor.Sprint("✅ INSTALLED")
			installed++
		}

		fmt.Fprintf(w, "%s  %s - %s", status, boldColor.Sprint(rows[i].Tool.Name), rows[i].Tool.Description)
		if rows[i].Installed && rows[i].Server.Status != "" {
			health := warningColor
			if rows[i].Server.Connected() {
				health = successColor
			}
			fmt.Fprintf(w, " %s", health.Sprintf("[%s]", rows[i].Server.Status))
		}
		fmt.Fprintln(w)

		command := rows[i].Tool.CommandString()
		if len(command) > maxCommandWidth {
			command = command[:maxCommandWidth-3] + "..."
		}
		fmt.Fprintf(w, "   %s\n", dimColor.Sprint(command))

		if !rows[i].PrerequisitesMet {
			fmt.Fprintf(w, "   %s\n", warningColor.Sprintf("⚠️  Prerequisites missing: %s", rows[i].Tool.ErrorMessage))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total: %d tools (%d installed)\n", len(rows), installed)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "💡 Tip: Use 'cx add --interactive' for guided tool selection and installation")
}

// RenderSummary renders the per-tool results of a batch.
func RenderSummary(w io.Writer, summary types.Summary) {
	if len(summary.Results) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", dimColor.Sprintf("── %s summary ──", summary.Operation.Noun()))
	for _, r := range summary.Results {
		switch r.Status {
		case types.StatusSucceeded:
			successColor.Fprintf(w, "  ✓ %s %s\n", r.Name, summary.Operation.PastTense())
		case types.StatusUnchanged:
			fmt.Fprintf(w, "  - %s unchanged\n", r.Name)
		default:
			errorColor.Fprintf(w, "  ✗ %s: %s\n", r.Name, r.Status)
		}
	}
}
