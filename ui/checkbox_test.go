package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func press(m checkboxModel, keys ...tea.KeyMsg) checkboxModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(checkboxModel)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyA     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}
)

func TestCheckboxModel(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want []string
	}{
		{
			name: "toggle first and confirm",
			keys: []tea.KeyMsg{keySpace, keyEnter},
			want: []string{"serena"},
		},
		{
			name: "navigate and select two",
			keys: []tea.KeyMsg{keyDown, keyDown, keySpace, keyUp, keyUp, keySpace, keyEnter},
			want: []string{"serena", "gemini-cli"},
		},
		{
			name: "toggle twice unselects",
			keys: []tea.KeyMsg{keySpace, keySpace, keyEnter},
			want: nil,
		},
		{
			name: "cursor stops at bounds",
			keys: []tea.KeyMsg{keyUp, keyDown, keyDown, keyDown, keyDown, keySpace, keyEnter},
			want: []string{"gemini-cli"},
		},
		{
			name: "toggle all",
			keys: []tea.KeyMsg{keyA, keyEnter},
			want: []string{"serena", "basic-memory", "gemini-cli"},
		},
		{
			name: "toggle all twice clears",
			keys: []tea.KeyMsg{keyA, keyA, keyEnter},
			want: nil,
		},
		{
			name: "escape cancels selection",
			keys: []tea.KeyMsg{keySpace, keyEsc},
			want: nil,
		},
		{
			name: "ctrl+c cancels selection",
			keys: []tea.KeyMsg{keySpace, keyCtrlC},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newCheckboxModel("Select MCP tools to install:", testCandidates()), tt.keys...)

			if diff := cmp.Diff(tt.want, m.result()); diff != "" {
				t.Errorf("result() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckboxModel_QuitCommands(t *testing.T) {
	m := newCheckboxModel("t", testCandidates())

	if _, cmd := m.Update(keyDown); cmd != nil {
		t.Error("navigation should not return a command")
	}
	if _, cmd := m.Update(keyEnter); cmd == nil {
		t.Error("enter should quit the program")
	}
	if _, cmd := m.Update(keyEsc); cmd == nil {
		t.Error("esc should quit the program")
	}
}

func TestCheckboxModel_View(t *testing.T) {
	m := press(newCheckboxModel("Select MCP tools to install:", testCandidates()), keySpace)

	view := m.View()
	for _, want := range []string{"Select MCP tools to install:", "[x] serena", "[ ] basic-memory", "(already installed)", "(prerequisites missing)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestCheckboxSelector_NoCandidates(t *testing.T) {
	got, err := CheckboxSelector{}.Select("t", nil)
	if err != nil || got != nil {
		t.Errorf("Select(nil) = %v, %v; want nil, nil", got, err)
	}
}
