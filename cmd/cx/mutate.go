package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nnnkkk7/claude-extend/installer"
	"github.com/nnnkkk7/claude-extend/types"
	"github.com/nnnkkk7/claude-extend/ui"
)

var errNoTools = errors.New("no tools specified")

// batchFlags are the flags shared by add and remove.
type batchFlags struct {
	interactive bool
	numbered    bool
	projectDir  string
}

func (f *batchFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "Select tools from an interactive menu")
	cmd.Flags().BoolVar(&f.numbered, "numbered", false, "Use a numbered prompt instead of the checkbox menu")
}

// noToolsError prints the usage hint for an empty add or remove.
func noToolsError(p *ui.Printer, op types.Operation) error {
	p.Errorf("No tools specified. Use --interactive or specify tool names to %s.", op)
	return &reportedError{err: errNoTools}
}

func runBatch(cmd *cobra.Command, op types.Operation, names []string, flags batchFlags) error {
	a := newApp(cmd.ErrOrStderr())
	defer a.close()

	in := a.installer(selectorFor(cmd, flags.numbered), flags.projectDir)
	return executeBatch(cmd.Context(), cmd.OutOrStdout(), a.printer, in, op, names, flags.interactive)
}

// executeBatch runs an add or remove against an installer. Per-tool
// failures are reported inline and do not fail the command. Batches of
// more than one tool end with a summary written to w.
func executeBatch(ctx context.Context, w io.Writer, p *ui.Printer, in *installer.Installer, op types.Operation, names []string, interactive bool) error {
	if len(names) == 0 && !interactive {
		return noToolsError(p, op)
	}

	if err := in.CheckEnvironment(interactive); err != nil {
		return &reportedError{err: err}
	}

	var summary types.Summary
	if interactive {
		if len(names) > 0 {
			p.Warningf("Ignoring %s in interactive mode", strings.Join(names, ", "))
		}
		var err error
		summary, err = in.Interactive(ctx, op)
		if err != nil {
			return fmt.Errorf("interactive %s failed: %w", op, err)
		}
	} else {
		summary = in.Run(ctx, op, names)
	}

	if len(summary.Results) > 1 {
		ui.RenderSummary(w, summary)
	}
	return nil
}
