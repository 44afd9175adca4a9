// Package installer processes batches of install and remove requests
// against the registry, either from explicit names or an interactive selection.
package installer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/nnnkkk7/claude-extend/registry"
	"github.com/nnnkkk7/claude-extend/types"
)

// ErrNoSelector is returned by Interactive when no selector was configured.
var ErrNoSelector = errors.New("no interactive selector configured")

// Printer receives user-facing status lines.
type Printer interface {
	Info(msg string)
	Success(msg string)
	Warning(msg string)
	Error(msg string)
	Blank()
}

// Selector presents candidates to the user and returns the chosen names in
// order. An empty result means the user cancelled.
type Selector interface {
	Select(title string, candidates []types.Candidate) ([]string, error)
}

// Options configures an Installer.
type Options struct {
	Registry *registry.Registry
	Printer  Printer
	Selector Selector
	// ProjectDir substitutes {project_dir}; empty means the working directory.
	ProjectDir string
	Logger     *zap.Logger
	Env        Environment
}

// Installer runs install and remove batches.
type Installer struct {
	reg        *registry.Registry
	p          Printer
	selector   Selector
	projectDir string
	log        *zap.Logger
	env        Environment
}

// New creates an Installer.
func New(opts Options) *Installer {
	in := &Installer{
		reg:        opts.Registry,
		p:          opts.Printer,
		selector:   opts.Selector,
		projectDir: opts.ProjectDir,
		log:        opts.Logger,
		env:        opts.Env.withDefaults(),
	}
	if in.log == nil {
		in.log = zap.NewNop()
	}
	return in
}

// operation binds an Operation to its registry hooks.
type operation struct {
	kind types.Operation
	// precheck gates apply; nil means no precheck.
	precheck func(types.Tool) bool
	apply    func(context.Context, types.Tool) (types.Outcome, error)
	// unchanged is the message shown when the host already had the requested state.
	unchanged func(name string) string
}

func (in *Installer) operation(op types.Operation) operation {
	switch op {
	case types.OpRemove:
		return operation{
			kind:  op,
			apply: in.reg.Remove,
			unchanged: func(name string) string {
				return fmt.Sprintf("%s is not installed", name)
			},
		}
	default:
		return operation{
			kind:     types.OpInstall,
			precheck: in.reg.CheckPrerequisites,
			apply: func(ctx context.Context, t types.Tool) (types.Outcome, error) {
				return in.reg.Install(ctx, t, in.projectDir)
			},
			unchanged: func(name string) string {
				return fmt.Sprintf("%s is already installed", name)
			},
		}
	}
}

// Run processes names in order. Every name is processed regardless of
// earlier failures, and the completion line is always printed.
func (in *Installer) Run(ctx context.Context, op types.Operation, names []string) types.Summary {
	o := in.operation(op)
	summary := types.Summary{Operation: o.kind}

	for _, name := range names {
		summary.Results = append(summary.Results, in.process(ctx, o, name))
		in.p.Blank()
	}

	in.log.Debug("batch finished",
		zap.Stringer("operation", o.kind),
		zap.Int("requested", len(names)),
		zap.Int("succeeded", summary.Count(types.StatusSucceeded)),
		zap.Int("unchanged", summary.Count(types.StatusUnchanged)),
	)
	in.p.Success(fmt.Sprintf("MCP tool %s complete!", o.kind.Noun()))
	return summary
}

func (in *Installer) process(ctx context.Context, o operation, name string) types.Result {
	tool, ok := in.reg.GetTool(name)
	if !ok {
		in.p.Error(fmt.Sprintf("Unknown tool: %s", name))
		in.p.Info(fmt.Sprintf("Available tools: %s", strings.Join(in.reg.ToolNames(), ", ")))
		return types.Result{Name: name, Status: types.StatusUnknown}
	}

	in.p.Info(fmt.Sprintf("Processing: %s", tool.Description))

	if o.precheck != nil && !o.precheck(tool) {
		in.p.Error(fmt.Sprintf("Prerequisites not met for %s. %s", name, tool.ErrorMessage))
		in.p.Error(fmt.Sprintf("✗ Failed to %s %s", o.kind, name))
		return types.Result{Name: name, Status: types.StatusPrerequisitesMissing}
	}

	outcome, err := o.apply(ctx, tool)
	if err != nil {
		in.log.Debug("tool operation failed",
			zap.Stringer("operation", o.kind),
			zap.String("tool", name),
			zap.Error(err),
		)
		in.p.Error(fmt.Sprintf("✗ Failed to %s %s", o.kind, name))
		return types.Result{Name: name, Status: types.StatusFailed, Err: err}
	}

	if outcome == types.OutcomeUnchanged {
		in.p.Success(o.unchanged(name))
		return types.Result{Name: name, Status: types.StatusUnchanged}
	}

	in.p.Success(fmt.Sprintf("✓ %s %s successfully", name, o.kind.PastTense()))
	return types.Result{Name: name, Status: types.StatusSucceeded}
}

// Candidates returns every registry tool annotated with its current state.
func (in *Installer) Candidates(ctx context.Context) []types.Candidate {
	tools := in.reg.ListTools()
	candidates := make([]types.Candidate, len(tools))
	for i := range tools {
		candidates[i] = types.Candidate{
			Name:             tools[i].Name,
			Description:      tools[i].Description,
			Installed:        in.reg.IsToolInstalled(ctx, tools[i].Name),
			PrerequisitesMet: in.reg.CheckPrerequisites(tools[i]),
		}
	}
	return candidates
}

// Interactive lets the user pick tools and runs the batch on the selection.
// Cancelling performs no host mutations.
func (in *Installer) Interactive(ctx context.Context, op types.Operation) (types.Summary, error) {
	summary := types.Summary{Operation: op}
	if in.selector == nil {
		return summary, ErrNoSelector
	}

	installed := mapset.NewSet(in.reg.InstalledTools(ctx)...)

	if op == types.OpInstall && installed.Cardinality() == len(in.reg.ToolNames()) {
		in.p.Success("All tools are already installed!")
		return summary, nil
	}
	if op == types.OpRemove && installed.Cardinality() == 0 {
		in.p.Info("No tools are installed.")
		return summary, nil
	}

	selected, err := in.selector.Select(fmt.Sprintf("Select MCP tools to %s:", op), in.Candidates(ctx))
	if err != nil {
		return summary, err
	}
	if len(selected) == 0 {
		in.p.Info(fmt.Sprintf("%s cancelled.", capitalize(op.Noun())))
		return summary, nil
	}

	var filtered []string
	for _, name := range selected {
		switch {
		case op == types.OpInstall && installed.Contains(name):
			in.p.Info(fmt.Sprintf("%s is already installed, skipping.", name))
		case op == types.OpRemove && !installed.Contains(name):
			in.p.Info(fmt.Sprintf("%s is not installed, skipping.", name))
		default:
			filtered = append(filtered, name)
		}
	}

	if len(filtered) == 0 {
		in.p.Info(fmt.Sprintf("Nothing to %s.", op))
		return summary, nil
	}

	in.p.Info(fmt.Sprintf("%s %d MCP tool(s)...", op.Gerund(), len(filtered)))
	in.p.Blank()

	return in.Run(ctx, op, filtered), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
