package registry

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nnnkkk7/claude-extend/types"
)

// lookPathFor returns a LookPathFunc that only resolves the given executables.
func lookPathFor(available ...string) LookPathFunc {
	return func(file string) (string, error) {
		for _, a := range available {
			if a == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestRegistry_CheckPrerequisites(t *testing.T) {
	tests := []struct {
		name         string
		prerequisite string
		available    []string
		want         bool
	}{
		{name: "available", prerequisite: "python", available: []string{"python"}, want: true},
		{name: "missing", prerequisite: "python", available: nil, want: false},
		{name: "npm group with npm", prerequisite: "npm", available: []string{"npm"}, want: true},
		{name: "npm group with npx", prerequisite: "npm", available: []string{"npx"}, want: true},
		{name: "npm group with neither", prerequisite: "npm", available: []string{"node"}, want: false},
		{name: "npx is not a group", prerequisite: "npx", available: []string{"npm"}, want: false},
		{name: "empty prerequisite", prerequisite: "", available: []string{"python"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Options{Tools: testTools(), LookPath: lookPathFor(tt.available...)})
			tool := types.Tool{Name: "t", Prerequisite: tt.prerequisite, InstallCommand: []string{"x"}}

			if got := r.CheckPrerequisites(tool); got != tt.want {
				t.Errorf("CheckPrerequisites() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry_Install(t *testing.T) {
	tests := []struct {
		name        string
		listOutput  string
		addErr      error
		tool        types.Tool
		projectDir  string
		wantOutcome types.Outcome
		wantErr     bool
		wantAdded   [][]string
	}{
		{
			name:        "installs with substituted project dir",
			tool:        types.Tool{Name: "serena", InstallCommand: []string{"run", "--dir", "{project_dir}"}},
			projectDir:  "/x/y",
			wantOutcome: types.OutcomeApplied,
			wantAdded:   [][]string{{"serena", "run", "--dir", "/x/y"}},
		},
		{
			name:        "already installed is a no-op",
			listOutput:  "serena: run --dir /x/y - ✓ Connected",
			tool:        types.Tool{Name: "serena", InstallCommand: []string{"run"}},
			projectDir:  "/x/y",
			wantOutcome: types.OutcomeUnchanged,
		},
		{
			name:        "host failure",
			addErr:      errors.New("exit status 1"),
			tool:        types.Tool{Name: "serena", InstallCommand: []string{"run"}},
			projectDir:  "/x/y",
			wantOutcome: types.OutcomeApplied,
			wantErr:     true,
			wantAdded:   [][]string{{"serena", "run"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &fakeHost{listOutput: tt.listOutput, addErr: tt.addErr}
			r := New(Options{Tools: []types.Tool{tt.tool}, Host: host})

			got, err := r.Install(context.Background(), tt.tool, tt.projectDir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Install() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.wantOutcome {
				t.Errorf("Install() outcome = %v, want %v", got, tt.wantOutcome)
			}
			if diff := cmp.Diff(tt.wantAdded, host.added); diff != "" {
				t.Errorf("host Add calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegistry_Install_DefaultsToWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}

	tool := types.Tool{Name: "serena", InstallCommand: []string{"serve", "--project", "{project_dir}"}}
	host := &fakeHost{}
	r := New(Options{Tools: []types.Tool{tool}, Host: host})

	if _, err := r.Install(context.Background(), tool, ""); err != nil {
		t.Fatalf("Install() failed: %v", err)
	}

	want := [][]string{{"serena", "serve", "--project", wd}}
	if diff := cmp.Diff(want, host.added); diff != "" {
		t.Errorf("host Add calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Install_TwiceAlreadyInstalled(t *testing.T) {
	tool := testTools()[0]
	host := &fakeHost{listOutput: "test-tool: echo installing test-tool - ✓ Connected"}
	r := New(Options{Tools: testTools(), Host: host})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := r.Install(ctx, tool, "/p")
		if err != nil {
			t.Fatalf("Install() #%d failed: %v", i+1, err)
		}
		if got != types.OutcomeUnchanged {
			t.Errorf("Install() #%d outcome = %v, want OutcomeUnchanged", i+1, got)
		}
	}
	if len(host.added) != 0 {
		t.Errorf("host Add called %d times, want 0", len(host.added))
	}
}

func TestRegistry_Remove(t *testing.T) {
	tests := []struct {
		name        string
		listOutput  string
		removeErr   error
		wantOutcome types.Outcome
		wantErr     bool
		wantRemoved []string
	}{
		{
			name:        "removes installed tool",
			listOutput:  "test-tool: echo - ✓ Connected",
			wantOutcome: types.OutcomeApplied,
			wantRemoved: []string{"test-tool"},
		},
		{
			name:        "not installed is a no-op",
			listOutput:  "another-tool: echo - ✓ Connected",
			wantOutcome: types.OutcomeUnchanged,
		},
		{
			name:        "host failure",
			listOutput:  "test-tool: echo - ✓ Connected",
			removeErr:   errors.New("exit status 1"),
			wantOutcome: types.OutcomeApplied,
			wantErr:     true,
			wantRemoved: []string{"test-tool"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &fakeHost{listOutput: tt.listOutput, removeErr: tt.removeErr}
			r := New(Options{Tools: testTools(), Host: host})

			got, err := r.Remove(context.Background(), testTools()[0])
			if (err != nil) != tt.wantErr {
				t.Fatalf("Remove() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.wantOutcome {
				t.Errorf("Remove() outcome = %v, want %v", got, tt.wantOutcome)
			}
			if diff := cmp.Diff(tt.wantRemoved, host.removed); diff != "" {
				t.Errorf("host Remove calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegistry_MutationWithoutHost(t *testing.T) {
	r := New(Options{Tools: testTools()})

	_, err := r.Install(context.Background(), testTools()[0], "/p")
	if !errors.Is(err, ErrNoHost) {
		t.Errorf("Install() error = %v, want ErrNoHost", err)
	}
}

func TestRegistry_MutationProgress(t *testing.T) {
	tools := testTools()
	host := &fakeHost{listOutput: "another-tool: echo - ✓ Connected"}
	rep := &recordingReporter{}
	r := New(Options{Tools: tools, Host: host, Reporter: rep})
	ctx := context.Background()

	if _, err := r.Install(ctx, tools[0], "/p"); err != nil {
		t.Fatalf("Install() failed: %v", err)
	}
	if _, err := r.Install(ctx, tools[1], "/p"); err != nil {
		t.Fatalf("Install() failed: %v", err)
	}
	if _, err := r.Remove(ctx, tools[1]); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if _, err := r.Remove(ctx, tools[0]); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}

	// Only calls that reach the host announce themselves.
	want := []string{
		"Installing Test Tool - A tool for testing...",
		"Removing Another Tool - Another testing tool...",
	}
	if diff := cmp.Diff(want, rep.infos); diff != "" {
		t.Errorf("progress notices mismatch (-want +got):\n%s", diff)
	}
}
