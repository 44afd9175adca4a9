package host

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fakeHostScript = `#!/bin/sh
echo "$@" >> "$CX_FAKE_LOG"
if [ "$2" = "list" ]; then
  cat "$CX_FAKE_LIST"
fi
exit ${CX_FAKE_EXIT:-0}
`

// newFakeHost writes a shell script that records its arguments and
// returns a client pointing at it together with the argument log path.
func newFakeHost(t *testing.T, listOutput string, exitCode string) (*Client, string, *bytes.Buffer) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake host script requires a POSIX shell")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, "claude")
	require.NoError(t, os.WriteFile(bin, []byte(fakeHostScript), 0o755))

	listPath := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(listPath, []byte(listOutput), 0o644))

	logPath := filepath.Join(dir, "args.log")
	t.Setenv("CX_FAKE_LOG", logPath)
	t.Setenv("CX_FAKE_LIST", listPath)
	t.Setenv("CX_FAKE_EXIT", exitCode)

	var out bytes.Buffer
	c := New(Options{Binary: bin, Stdout: &out, Stderr: &out, Logger: zap.NewNop()})
	return c, logPath, &out
}

func readArgs(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{})
	require.Equal(t, DefaultBinary, c.Binary())
}

func TestClient_List(t *testing.T) {
	c, logPath, _ := newFakeHost(t, "serena: uvx serena - ✓ Connected\n", "0")

	out, err := c.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "serena: uvx serena - ✓ Connected\n", out)
	require.Equal(t, []string{"mcp list"}, readArgs(t, logPath))
}

func TestClient_List_NonZeroExit(t *testing.T) {
	c, _, _ := newFakeHost(t, "", "3")

	_, err := c.List(context.Background())
	require.Error(t, err)

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	require.Equal(t, 3, procErr.ExitCode)
}

func TestClient_Add(t *testing.T) {
	c, logPath, _ := newFakeHost(t, "", "0")

	err := c.Add(context.Background(), "serena", []string{"uvx", "serena", "--project", "/x/y"})
	require.NoError(t, err)
	require.Equal(t, []string{"mcp add serena -- uvx serena --project /x/y"}, readArgs(t, logPath))
}

func TestClient_Add_EmptyCommand(t *testing.T) {
	c, logPath, _ := newFakeHost(t, "", "0")

	err := c.Add(context.Background(), "serena", nil)
	require.Error(t, err)
	require.Nil(t, readArgs(t, logPath))
}

func TestClient_Remove(t *testing.T) {
	c, logPath, _ := newFakeHost(t, "", "0")

	require.NoError(t, c.Remove(context.Background(), "serena"))
	require.Equal(t, []string{"mcp remove serena"}, readArgs(t, logPath))
}

func TestClient_Remove_Failure(t *testing.T) {
	c, _, _ := newFakeHost(t, "", "1")

	err := c.Remove(context.Background(), "serena")

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	require.Equal(t, 1, procErr.ExitCode)
	require.Contains(t, procErr.Error(), "mcp remove serena")
}

func TestClient_LaunchFailure(t *testing.T) {
	c := New(Options{Binary: filepath.Join(t.TempDir(), "does-not-exist"), Logger: zap.NewNop()})

	err := c.Remove(context.Background(), "serena")
	require.Error(t, err)

	var procErr *ProcessError
	require.False(t, errors.As(err, &procErr), "launch failures are not process errors")
}

func TestClient_LookPath(t *testing.T) {
	c := New(Options{Binary: "cx-definitely-not-installed"})

	_, err := c.LookPath()
	require.Error(t, err)
}

func TestProcessError(t *testing.T) {
	root := errors.New("exit status 2")
	err := &ProcessError{Args: []string{"claude", "mcp", "list"}, ExitCode: 2, Err: root}

	require.Equal(t, "claude mcp list failed (exit 2)", err.Error())
	require.ErrorIs(t, err, root)
}
