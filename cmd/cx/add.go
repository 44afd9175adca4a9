package main

import (
	"github.com/spf13/cobra"

	"github.com/nnnkkk7/claude-extend/types"
)

var addFlags batchFlags

var addCmd = &cobra.Command{
	Use:   "add [tool...]",
	Short: "Add MCP tools (use --interactive for guided selection)",
	Long: `Install the named tools into the Claude CLI.

Each tool's prerequisite executable must be on PATH. The {project_dir}
placeholder in a tool's command is replaced with --project-dir, or the
current directory when the flag is not set.`,
	Example: `  cx add serena basic-memory
  cx add --interactive
  cx add serena --project-dir ~/src/app`,
	RunE: runAdd,
}

func init() {
	addFlags.register(addCmd)
	addCmd.Flags().StringVar(&addFlags.projectDir, "project-dir", "", "Directory substituted for {project_dir} (default: current directory)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	return runBatch(cmd, types.OpInstall, args, addFlags)
}
