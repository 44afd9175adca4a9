package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nnnkkk7/claude-extend/types"
)

const checkboxHelp = "(Use arrow keys to navigate, space to select, a to toggle all, enter to confirm, ctrl+c to cancel)"

// checkboxModel is a bubbletea model for multi-selecting candidates.
type checkboxModel struct {
	title      string
	candidates []types.Candidate
	cursor     int
	checked    map[int]bool
	confirmed  bool
	cancelled  bool
}

func newCheckboxModel(title string, candidates []types.Candidate) checkboxModel {
	return checkboxModel{
		title:      title,
		candidates: candidates,
		checked:    make(map[int]bool),
	}
}

func (m checkboxModel) Init() tea.Cmd {
	return nil
}

func (m checkboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.candidates)-1 {
			m.cursor++
		}
	case " ", "x":
		m.checked[m.cursor] = !m.checked[m.cursor]
	case "a":
		all := len(m.selected()) < len(m.candidates)
		for i := range m.candidates {
			m.checked[i] = all
		}
	}
	return m, nil
}

func (m checkboxModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "? %s %s\n", boldColor.Sprint(m.title), dimColor.Sprint(checkboxHelp))

	if m.confirmed || m.cancelled {
		return b.String()
	}

	for i := range m.candidates {
		pointer := " "
		if i == m.cursor {
			pointer = ">"
		}
		box := "[ ]"
		if m.checked[i] {
			box = "[x]"
		}

		line := fmt.Sprintf("%s %s %s - %s", pointer, box, m.candidates[i].Name, m.candidates[i].Description)
		if note := m.candidates[i].Annotation(); note != "" {
			line += " " + note
		}
		if i == m.cursor {
			line = infoColor.Sprint(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// selected returns checked candidate names in display order.
func (m checkboxModel) selected() []string {
	var names []string
	for i := range m.candidates {
		if m.checked[i] {
			names = append(names, m.candidates[i].Name)
		}
	}
	return names
}

// result returns the selection, or nil when the user cancelled.
func (m checkboxModel) result() []string {
	if m.cancelled || !m.confirmed {
		return nil
	}
	return m.selected()
}

// CheckboxSelector presents candidates as an interactive checkbox list.
type CheckboxSelector struct {
	In  io.Reader
	Out io.Writer
}

// Select implements the installer selector contract.
func (s CheckboxSelector) Select(title string, candidates []types.Candidate) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	in, out := s.In, s.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}

	p := tea.NewProgram(newCheckboxModel(title, candidates), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("selection prompt failed: %w", err)
	}

	m, ok := final.(checkboxModel)
	if !ok {
		return nil, fmt.Errorf("selection prompt returned unexpected model %T", final)
	}
	return m.result(), nil
}
