package registry

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nnnkkk7/claude-extend/types"
)

// ErrNoHost is returned when a mutation is attempted on a registry without a host.
var ErrNoHost = errors.New("no host configured")

// CheckPrerequisites reports whether any executable satisfying the tool's
// prerequisite is on the search path. Existence only; versions are not checked.
func (r *Registry) CheckPrerequisites(tool types.Tool) bool {
	for _, exe := range tool.PrerequisiteAlternatives() {
		if _, err := r.lookPath(exe); err == nil {
			return true
		}
	}
	return false
}

// Install adds the tool to the host. An empty projectDir means the current
// working directory. Installing an already installed tool is a no-op that
// returns OutcomeUnchanged without calling the host.
func (r *Registry) Install(ctx context.Context, tool types.Tool, projectDir string) (types.Outcome, error) {
	if r.IsToolInstalled(ctx, tool.Name) {
		return types.OutcomeUnchanged, nil
	}
	if r.host == nil {
		return types.OutcomeApplied, ErrNoHost
	}

	if projectDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return types.OutcomeApplied, fmt.Errorf("failed to resolve project directory: %w", err)
		}
		projectDir = wd
	}

	r.info(fmt.Sprintf("Installing %s...", tool.Description))

	command := tool.ExpandCommand(projectDir)
	r.log.Debug("installing tool",
		zap.String("tool", tool.Name),
		zap.String("project_dir", projectDir),
		zap.Strings("command", command),
	)

	if err := r.host.Add(ctx, tool.Name, command); err != nil {
		return types.OutcomeApplied, fmt.Errorf("failed to install %s: %w", tool.Name, err)
	}
	return types.OutcomeApplied, nil
}

// Remove deletes the tool from the host. Removing a tool that is not
// installed is a no-op that returns OutcomeUnchanged without calling the host.
func (r *Registry) Remove(ctx context.Context, tool types.Tool) (types.Outcome, error) {
	if !r.IsToolInstalled(ctx, tool.Name) {
		return types.OutcomeUnchanged, nil
	}
	if r.host == nil {
		return types.OutcomeApplied, ErrNoHost
	}

	r.info(fmt.Sprintf("Removing %s...", tool.Description))
	r.log.Debug("removing tool", zap.String("tool", tool.Name))

	if err := r.host.Remove(ctx, tool.Name); err != nil {
		return types.OutcomeApplied, fmt.Errorf("failed to remove %s: %w", tool.Name, err)
	}
	return types.OutcomeApplied, nil
}

func (r *Registry) info(msg string) {
	if r.report != nil {
		r.report.Info(msg)
	}
}
