package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nnnkkk7/claude-extend/host"
	"github.com/nnnkkk7/claude-extend/installer"
	"github.com/nnnkkk7/claude-extend/registry"
	"github.com/nnnkkk7/claude-extend/ui"
)

// envDebug enables diagnostic logging like --debug.
const envDebug = "CX_DEBUG"

// app bundles the collaborators shared by the subcommands.
type app struct {
	printer *ui.Printer
	log     *zap.Logger
	host    *host.Client
	reg     *registry.Registry
}

func newLogger() *zap.Logger {
	if !debugLog && os.Getenv(envDebug) == "" {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newApp wires the registry to the real host CLI. Status lines and registry
// notices go to status, which is stderr outside tests.
func newApp(status io.Writer) *app {
	log := newLogger()
	printer := ui.NewPrinter(status)
	h := host.New(host.Options{Logger: log})
	reg := registry.New(registry.Options{
		ConfigPath: configPath,
		Host:       h,
		Reporter:   printer,
		Logger:     log,
	})
	return &app{printer: printer, log: log, host: h, reg: reg}
}

func (a *app) close() {
	_ = a.log.Sync()
}

// selectorFor picks the selection widget for interactive commands.
func selectorFor(cmd *cobra.Command, numbered bool) installer.Selector {
	if numbered {
		return ui.NumberedSelector{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()}
	}
	return ui.CheckboxSelector{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()}
}

func (a *app) installer(sel installer.Selector, projectDir string) *installer.Installer {
	return installer.New(installer.Options{
		Registry:   a.reg,
		Printer:    a.printer,
		Selector:   sel,
		ProjectDir: projectDir,
		Logger:     a.log,
		Env:        installer.Environment{Host: a.host},
	})
}
