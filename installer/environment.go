package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/nnnkkk7/claude-extend/host"
)

var (
	// ErrHostNotFound is returned when the host CLI is not on PATH.
	ErrHostNotFound = errors.New("host CLI not found")
	// ErrNotInteractive is returned when interactive mode runs without a terminal.
	ErrNotInteractive = errors.New("interactive input required")
)

// projectMarkers are files whose presence marks the working directory as a project root.
var projectMarkers = []string{"package.json", "pyproject.toml", "Cargo.toml", ".git", "go.mod"}

// HostLocator resolves the host CLI executable.
type HostLocator interface {
	Binary() string
	LookPath() (string, error)
}

// Environment holds the probes used by CheckEnvironment. Zero fields fall
// back to the real process environment.
type Environment struct {
	Host       HostLocator
	IsTerminal func() bool
	Getwd      func() (string, error)
}

func (e Environment) withDefaults() Environment {
	if e.Host == nil {
		e.Host = host.New(host.Options{})
	}
	if e.IsTerminal == nil {
		e.IsTerminal = stdinIsTerminal
	}
	if e.Getwd == nil {
		e.Getwd = os.Getwd
	}
	return e
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// CheckEnvironment verifies the preconditions for add and remove. The
// project-directory check only prints a hint; a missing host binary or a
// non-terminal stdin in interactive mode is fatal.
func (in *Installer) CheckEnvironment(interactive bool) error {
	cwd, err := in.env.Getwd()
	if err == nil && hasProjectMarker(cwd) {
		in.p.Success(fmt.Sprintf("Project directory detected: %s", cwd))
	} else {
		in.p.Warning("No project directory detected")
		in.p.Info(fmt.Sprintf("Look for files like %s", markerList()))
	}

	if _, err := in.env.Host.LookPath(); err != nil {
		in.log.Debug("host lookup failed", zap.String("binary", in.env.Host.Binary()), zap.Error(err))
		in.p.Error("Claude CLI not found. Please install it first.")
		return ErrHostNotFound
	}

	if interactive && !in.env.IsTerminal() {
		in.p.Error("This command requires interactive input.")
		return ErrNotInteractive
	}
	return nil
}

func hasProjectMarker(dir string) bool {
	for _, marker := range projectMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func markerList() string {
	head := projectMarkers[:len(projectMarkers)-1]
	return strings.Join(head, ", ") + ", or " + projectMarkers[len(projectMarkers)-1]
}
