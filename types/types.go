// Package types defines common types used across cx.
package types

import (
	"fmt"
	"strings"
)

// ProjectDirPlaceholder is replaced with the project directory at install time.
const ProjectDirPlaceholder = "{project_dir}"

// prerequisiteGroups maps logical prerequisites to the executables that satisfy them.
var prerequisiteGroups = map[string][]string{
	"npm": {"npm", "npx"},
}

// Tool describes one installable MCP integration.
type Tool struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Prerequisite   string   `json:"prerequisite"`
	ErrorMessage   string   `json:"error_message"`
	InstallCommand []string `json:"install_command"`
}

// Clone returns a deep copy of the tool.
func (t Tool) Clone() Tool {
	c := t
	c.InstallCommand = append([]string(nil), t.InstallCommand...)
	return c
}

// Validate reports whether the tool can be registered.
func (t Tool) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tool name is empty")
	}
	if len(t.InstallCommand) == 0 || t.InstallCommand[0] == "" {
		return fmt.Errorf("tool %q: install_command needs at least an executable", t.Name)
	}
	return nil
}

// ExpandCommand returns the install command with every {project_dir}
// placeholder replaced by projectDir. Other tokens are returned unchanged.
func (t Tool) ExpandCommand(projectDir string) []string {
	out := make([]string, len(t.InstallCommand))
	for i, arg := range t.InstallCommand {
		out[i] = strings.ReplaceAll(arg, ProjectDirPlaceholder, projectDir)
	}
	return out
}

// PrerequisiteAlternatives returns the executables that satisfy the prerequisite.
// Logical groups such as "npm" expand to every equivalent executable.
func (t Tool) PrerequisiteAlternatives() []string {
	if group, ok := prerequisiteGroups[t.Prerequisite]; ok {
		return group
	}
	if t.Prerequisite == "" {
		return nil
	}
	return []string{t.Prerequisite}
}

// CommandString returns a human-readable representation of the install command.
func (t Tool) CommandString() string {
	return strings.Join(t.InstallCommand, " ")
}

// Operation is a batch action applied to tools.
type Operation int

const (
	// OpInstall adds tools to the host.
	OpInstall Operation = iota
	// OpRemove removes tools from the host.
	OpRemove
)

// String returns the string representation of the operation.
func (o Operation) String() string {
	switch o {
	case OpInstall:
		return "install"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// PastTense returns the verb used in result messages.
func (o Operation) PastTense() string {
	switch o {
	case OpInstall:
		return "installed"
	case OpRemove:
		return "removed"
	default:
		return "processed"
	}
}

// Noun returns the noun used in progress and summary messages.
func (o Operation) Noun() string {
	switch o {
	case OpInstall:
		return "installation"
	case OpRemove:
		return "removal"
	default:
		return "operation"
	}
}

// Gerund returns the capitalised progressive form used in progress messages.
func (o Operation) Gerund() string {
	switch o {
	case OpInstall:
		return "Installing"
	case OpRemove:
		return "Removing"
	default:
		return "Processing"
	}
}

// Outcome describes what a single install or remove did to the host state.
type Outcome int

const (
	// OutcomeApplied means the host command ran and succeeded.
	OutcomeApplied Outcome = iota
	// OutcomeUnchanged means the host was already in the requested state.
	OutcomeUnchanged
)

// Status is the per-tool result of a batch.
type Status int

const (
	// StatusSucceeded indicates the host command succeeded.
	StatusSucceeded Status = iota
	// StatusUnchanged indicates nothing needed to be done.
	StatusUnchanged
	// StatusUnknown indicates the name is not in the registry.
	StatusUnknown
	// StatusPrerequisitesMissing indicates the prerequisite executable is absent.
	StatusPrerequisitesMissing
	// StatusFailed indicates the host command failed.
	StatusFailed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusUnchanged:
		return "unchanged"
	case StatusUnknown:
		return "unknown tool"
	case StatusPrerequisitesMissing:
		return "prerequisites not met"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// OK reports whether the status counts as a success.
func (s Status) OK() bool {
	return s == StatusSucceeded || s == StatusUnchanged
}

// Result holds the outcome of processing one requested tool name.
type Result struct {
	Name   string
	Status Status
	Err    error
}

// Summary holds the results of a batch in request order.
type Summary struct {
	Operation Operation
	Results   []Result
}

// Count returns how many results have the given status.
func (s Summary) Count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Failed reports whether any requested tool did not succeed.
func (s Summary) Failed() bool {
	for _, r := range s.Results {
		if !r.Status.OK() {
			return true
		}
	}
	return false
}

// InstalledServer is one entry parsed from the host's `mcp list` output.
type InstalledServer struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Status  string `json:"status,omitempty"`
}

// Connected reports whether the host reported the server as reachable.
func (s InstalledServer) Connected() bool {
	return strings.Contains(s.Status, "Connected") && !strings.Contains(s.Status, "Failed")
}

// Candidate is a tool offered for interactive selection.
type Candidate struct {
	Name             string
	Description      string
	Installed        bool
	PrerequisitesMet bool
}

// Annotation returns the status note shown next to a candidate.
func (c Candidate) Annotation() string {
	switch {
	case c.Installed:
		return "(already installed)"
	case !c.PrerequisitesMet:
		return "⚠️  (prerequisites missing)"
	default:
		return ""
	}
}
