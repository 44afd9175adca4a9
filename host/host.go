// Package host drives the external host CLI that owns the installed MCP server set.
package host

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// DefaultBinary is the host CLI invoked when no other binary is configured.
const DefaultBinary = "claude"

// ProcessError indicates the host CLI ran but exited non-zero.
type ProcessError struct {
	Args     []string
	ExitCode int
	Err      error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s failed (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Options configures a Client.
type Options struct {
	// Binary is the host executable name or path. Defaults to "claude".
	Binary string
	// Stdout and Stderr receive the output of add and remove commands.
	// Both default to os.Stderr so that stdout stays clean for cx output.
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// Client runs `mcp` subcommands of the host CLI.
type Client struct {
	binary string
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

// New creates a host client.
func New(opts Options) *Client {
	c := &Client{
		binary: opts.Binary,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		log:    opts.Logger,
	}
	if c.binary == "" {
		c.binary = DefaultBinary
	}
	if c.stdout == nil {
		c.stdout = os.Stderr
	}
	if c.stderr == nil {
		c.stderr = os.Stderr
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Binary returns the configured host executable.
func (c *Client) Binary() string {
	return c.binary
}

// LookPath resolves the host executable on the search path.
func (c *Client) LookPath() (string, error) {
	return exec.LookPath(c.binary)
}

// List returns the stdout of `<host> mcp list`.
func (c *Client) List(ctx context.Context) (string, error) {
	args := []string{"mcp", "list"}
	c.log.Debug("listing host MCP servers", zap.String("binary", c.binary))

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdout = &stdout

	if err := c.run(cmd, args); err != nil {
		return "", err
	}
	return stdout.String(), nil
}

// Add registers an MCP server: `<host> mcp add <name> -- <command...>`.
func (c *Client) Add(ctx context.Context, name string, command []string) error {
	if len(command) == 0 {
		return fmt.Errorf("add %s: empty command", name)
	}
	args := append([]string{"mcp", "add", name, "--"}, command...)
	return c.mutate(ctx, args)
}

// Remove unregisters an MCP server: `<host> mcp remove <name>`.
func (c *Client) Remove(ctx context.Context, name string) error {
	return c.mutate(ctx, []string{"mcp", "remove", name})
}

func (c *Client) mutate(ctx context.Context, args []string) error {
	c.log.Debug("running host command", zap.String("binary", c.binary), zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	return c.run(cmd, args)
}

func (c *Client) run(cmd *exec.Cmd, args []string) error {
	err := cmd.Run()
	if err == nil {
		return nil
	}

	full := append([]string{c.binary}, args...)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		c.log.Debug("host command exited non-zero",
			zap.Strings("args", full),
			zap.Int("exit_code", exitErr.ExitCode()),
		)
		return &ProcessError{Args: full, ExitCode: exitErr.ExitCode(), Err: err}
	}

	c.log.Debug("host command could not start", zap.Strings("args", full), zap.Error(err))
	return fmt.Errorf("failed to run %s: %w", strings.Join(full, " "), err)
}
