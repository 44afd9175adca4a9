package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nnnkkk7/claude-extend/types"
)

// ConfirmPromptWithReader asks for confirmation on r, writing the prompt to w.
// Returns true for "y" or "yes", false otherwise.
func ConfirmPromptWithReader(r io.Reader, w io.Writer, prompt string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Fprintf(w, "%s %s ", prompt, hint)

	reader := bufio.NewReader(r)
	input, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	input = strings.TrimSpace(strings.ToLower(input))

	if input == "" {
		return defaultYes
	}

	return input == "y" || input == "yes"
}

// NumberedSelector is a line-based selector for terminals where the
// checkbox widget is unavailable or unwanted.
type NumberedSelector struct {
	In  io.Reader
	Out io.Writer
}

// Select implements the installer selector contract.
func (s NumberedSelector) Select(title string, candidates []types.Candidate) ([]string, error) {
	in, out := s.In, s.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return SelectPromptWithReader(in, out, title, candidates), nil
}

// SelectPromptWithReader displays candidates as a numbered list and returns
// the chosen names in list order. Empty input or EOF selects nothing.
func SelectPromptWithReader(r io.Reader, w io.Writer, title string, candidates []types.Candidate) []string {
	if len(candidates) == 0 {
		return nil
	}

	fmt.Fprintf(w, "\n? %s (enter numbers separated by spaces, or 'all'):\n", title)

	for i := range candidates {
		line := fmt.Sprintf("  [%d] %s - %s", i+1, candidates[i].Name, candidates[i].Description)
		if note := candidates[i].Annotation(); note != "" {
			line += " " + warningColor.Sprint(note)
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprint(w, "\nEnter selection: ")

	reader := bufio.NewReader(r)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return nil
	}

	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return nil
	}

	if input == "all" {
		result := make([]string, len(candidates))
		for i := range candidates {
			result[i] = candidates[i].Name
		}
		return result
	}

	picked := make([]bool, len(candidates))
	for _, part := range strings.Fields(strings.ReplaceAll(input, ",", " ")) {
		var idx int
		if _, err := fmt.Sscanf(part, "%d", &idx); err == nil {
			if idx >= 1 && idx <= len(candidates) {
				picked[idx-1] = true
			}
		}
	}

	var selected []string
	for i := range candidates {
		if picked[i] {
			selected = append(selected, candidates[i].Name)
		}
	}
	return selected
}
