// Package main provides the entry point for the cx CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nnnkkk7/claude-extend/ui"
)

// Version is set at build time
var Version = "0.2.0"

var (
	configPath string
	debugLog   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			ui.NewPrinter(os.Stderr).Error(err.Error())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cx",
	Short: "Claude eXtend (cx) - MCP Server Manager",
	Long: `cx installs and removes MCP tool servers for the Claude CLI.

Tools come from a small registry: the built-in set, or a tools.json file
found via --config, $CLAUDE_EXTEND_CONFIG, ~/.config/claude-extend/tools.json
or ~/.claude-extend/tools.json.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

func init() {
	rootCmd.SetVersionTemplate("cx version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a tools.json registry file")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Write diagnostic logs to stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(configCmd)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Claude eXtend (cx) - MCP Server Manager")
	fmt.Fprintf(out, "Version %s\n\n", Version)
	return cmd.Help()
}

// reportedError marks an error whose user-facing message has already been printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}
