package main

import (
	"github.com/spf13/cobra"

	"github.com/nnnkkk7/claude-extend/types"
)

var removeFlags batchFlags

var removeCmd = &cobra.Command{
	Use:   "remove [tool...]",
	Short: "Remove MCP tools",
	Long: `Remove the named tools from the Claude CLI.

Tools that are not currently installed are skipped without calling the host.`,
	Example: `  cx remove gemini-cli
  cx remove --interactive`,
	RunE: runRemove,
}

func init() {
	removeFlags.register(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	return runBatch(cmd, types.OpRemove, args, removeFlags)
}
