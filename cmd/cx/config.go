package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nnnkkk7/claude-extend/config"
	"github.com/nnnkkk7/claude-extend/ui"
)

var (
	configInitForce bool
	configInitPath  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the tools registry file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the tools registry file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), resolveConfigPath())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in tools to a registry file",
	Long: `Write the built-in tool registry to a tools.json file so it can be edited.

The file goes to --path, the global --config, $CLAUDE_EXTEND_CONFIG or
~/.config/claude-extend/tools.json, in that order. An existing file is
backed up before it is replaced.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file without confirmation")
	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "Destination file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

// resolveConfigPath reports the registry file cx would load.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if path, ok := config.Locate(); ok {
		return path
	}
	return "(built-in defaults)"
}

func initTarget() string {
	switch {
	case configInitPath != "":
		return configInitPath
	case configPath != "":
		return configPath
	case os.Getenv(config.EnvConfigPath) != "":
		return os.Getenv(config.EnvConfigPath)
	default:
		return config.DefaultConfigPaths()[0]
	}
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	return writeDefaultConfig(cmd.InOrStdin(), cmd.ErrOrStderr(), initTarget(), configInitForce)
}

func writeDefaultConfig(in io.Reader, status io.Writer, path string, force bool) error {
	p := ui.NewPrinter(status)

	if _, err := os.Stat(path); err == nil && !force {
		if !ui.ConfirmPromptWithReader(in, status, fmt.Sprintf("%s exists. Overwrite?", path), false) {
			p.Info("Cancelled.")
			return nil
		}
	}

	backupPath, err := config.WriteTools(path, config.DefaultTools())
	if err != nil {
		return err
	}

	if backupPath != "" {
		p.Infof("Backup created: %s", backupPath)
	}
	p.Successf("Wrote %d tools to %s", len(config.DefaultTools()), path)
	return nil
}
