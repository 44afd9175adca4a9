// Package registry holds the set of installable MCP tools and answers
// installed-state questions against the host CLI.
package registry

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/nnnkkk7/claude-extend/config"
	"github.com/nnnkkk7/claude-extend/types"
)

// Host is the subset of the host CLI the registry needs.
type Host interface {
	List(ctx context.Context) (string, error)
	Add(ctx context.Context, name string, command []string) error
	Remove(ctx context.Context, name string) error
}

// Reporter receives user-facing notices emitted while loading tools and
// before each host mutation.
type Reporter interface {
	Info(msg string)
	Warning(msg string)
}

// LookPathFunc resolves an executable on the search path.
type LookPathFunc func(file string) (string, error)

// Options configures a Registry.
type Options struct {
	// ConfigPath overrides config discovery when non-empty.
	ConfigPath string
	// Tools bypasses config loading entirely when non-nil.
	Tools    []types.Tool
	Host     Host
	LookPath LookPathFunc
	Reporter Reporter
	Logger   *zap.Logger
}

// Registry maps tool names to descriptors, in load order, and caches the
// host's installed-server listing for its lifetime.
type Registry struct {
	tools    []types.Tool
	index    map[string]int
	source   string
	host     Host
	lookPath LookPathFunc
	report   Reporter
	log      *zap.Logger

	listed        bool
	installedText string
}

// New builds a registry. Tools come from, in order: Options.Tools,
// Options.ConfigPath, the discovered config file, the built-in defaults.
// A config that cannot be read or parsed is reported as a warning and the
// defaults are used instead.
func New(opts Options) *Registry {
	r := &Registry{
		host:     opts.Host,
		lookPath: opts.LookPath,
		report:   opts.Reporter,
		log:      opts.Logger,
	}
	if r.lookPath == nil {
		r.lookPath = exec.LookPath
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}

	tools, source := r.loadTools(opts)
	r.setTools(tools)
	r.source = source
	return r
}

func (r *Registry) loadTools(opts Options) ([]types.Tool, string) {
	if opts.Tools != nil {
		return opts.Tools, ""
	}

	path := opts.ConfigPath
	if path == "" {
		found, ok := config.Locate()
		if !ok {
			r.log.Debug("no tools config found, using defaults")
			return config.DefaultTools(), ""
		}
		path = found
	}

	tools, err := config.Load(path)
	if err != nil {
		r.log.Warn("failed to load tools config", zap.String("path", path), zap.Error(err))
		if opts.Reporter != nil {
			opts.Reporter.Warning(fmt.Sprintf("Failed to load or parse external config at '%s'.", path))
			opts.Reporter.Info("Please ensure the file exists, is valid JSON, and has correct permissions.")
			opts.Reporter.Info("Falling back to default tool registry")
		}
		return config.DefaultTools(), ""
	}

	r.log.Debug("loaded tools config", zap.String("path", path), zap.Int("tools", len(tools)))
	if opts.Reporter != nil {
		opts.Reporter.Info(fmt.Sprintf("Loaded tools from config: %s", path))
	}
	return tools, path
}

func (r *Registry) setTools(tools []types.Tool) {
	r.tools = make([]types.Tool, 0, len(tools))
	r.index = make(map[string]int, len(tools))
	for i := range tools {
		if _, dup := r.index[tools[i].Name]; dup {
			continue
		}
		r.index[tools[i].Name] = len(r.tools)
		r.tools = append(r.tools, tools[i].Clone())
	}
}

// Source returns the config path the tools were loaded from,
// or an empty string when the built-in defaults are in use.
func (r *Registry) Source() string {
	return r.source
}

// GetTool returns the tool registered under name.
func (r *Registry) GetTool(name string) (types.Tool, bool) {
	i, ok := r.index[name]
	if !ok {
		return types.Tool{}, false
	}
	return r.tools[i].Clone(), true
}

// ListTools returns every tool in load order.
func (r *Registry) ListTools() []types.Tool {
	out := make([]types.Tool, len(r.tools))
	for i := range r.tools {
		out[i] = r.tools[i].Clone()
	}
	return out
}

// ToolNames returns every tool name in load order.
func (r *Registry) ToolNames() []string {
	names := make([]string, len(r.tools))
	for i := range r.tools {
		names[i] = r.tools[i].Name
	}
	return names
}

// installedOutput returns the host's `mcp list` output, querying the host
// at most once per registry. Any host failure yields an empty listing.
func (r *Registry) installedOutput(ctx context.Context) string {
	if r.listed {
		return r.installedText
	}
	r.listed = true

	if r.host == nil {
		return ""
	}

	out, err := r.host.List(ctx)
	if err != nil {
		r.log.Debug("host list failed, treating installed set as empty", zap.Error(err))
		return ""
	}
	r.installedText = out
	return out
}

// InstalledOutput exposes the cached host listing for display purposes.
func (r *Registry) InstalledOutput(ctx context.Context) string {
	return r.installedOutput(ctx)
}

// IsToolInstalled reports whether "<name>:" occurs anywhere in the host's
// `mcp list` output.
//
// This is a plain substring test: a tool whose name is a suffix of another
// installed server's name ("memory" vs "basic-memory"), or that appears
// followed by a colon elsewhere in the output, reads as installed.
func (r *Registry) IsToolInstalled(ctx context.Context, name string) bool {
	out := r.installedOutput(ctx)
	if out == "" {
		return false
	}
	return strings.Contains(out, name+":")
}

// InstalledTools returns the names of installed tools in load order.
func (r *Registry) InstalledTools(ctx context.Context) []string {
	var names []string
	for i := range r.tools {
		if r.IsToolInstalled(ctx, r.tools[i].Name) {
			names = append(names, r.tools[i].Name)
		}
	}
	return names
}

// AvailableTools returns the names of tools that are not installed, in load order.
func (r *Registry) AvailableTools(ctx context.Context) []string {
	var names []string
	for i := range r.tools {
		if !r.IsToolInstalled(ctx, r.tools[i].Name) {
			names = append(names, r.tools[i].Name)
		}
	}
	return names
}
