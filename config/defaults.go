package config

import "github.com/nnnkkk7/claude-extend/types"

// DefaultTools returns the built-in tool set used when no valid config exists.
func DefaultTools() []types.Tool {
	return []types.Tool{
		{
			Name:         "serena",
			Description:  "Semantic code analysis and intelligent IDE assistant",
			Prerequisite: "uvx",
			ErrorMessage: "uvx not found. Install uv first: https://docs.astral.sh/uv/",
			InstallCommand: []string{
				"uvx", "--from", "git+https://github.com/oraios/serena", "serena", "start-mcp-server",
				"--context", "ide-assistant", "--project", types.ProjectDirPlaceholder,
			},
		},
		{
			Name:           "basic-memory",
			Description:    "Enhanced memory capabilities for Claude",
			Prerequisite:   "basic-memory",
			ErrorMessage:   "basic-memory not found. Install it with: uv tool install basic-memory",
			InstallCommand: []string{"basic-memory", "mcp"},
		},
		{
			Name:           "gemini-cli",
			Description:    "Google Gemini integration tool",
			Prerequisite:   "npm",
			ErrorMessage:   "npm/npx not found. Install Node.js first: https://nodejs.org/",
			InstallCommand: []string{"npx", "-y", "gemini-mcp-tool"},
		},
	}
}
