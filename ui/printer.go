// Package ui provides terminal UI components for cx.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.Faint)
	boldColor    = color.New(color.Bold)
)

// Printer writes levelled status lines, normally to stderr.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) line(c *color.Color, icon, msg string) {
	c.Fprintf(p.w, "%s  %s\n", icon, msg)
}

// Info prints an informational line.
func (p *Printer) Info(msg string) {
	p.line(infoColor, "ℹ️", msg)
}

// Success prints a success line.
func (p *Printer) Success(msg string) {
	p.line(successColor, "✅", msg)
}

// Warning prints a warning line.
func (p *Printer) Warning(msg string) {
	p.line(warningColor, "⚠️", msg)
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	p.line(errorColor, "❌", msg)
}

// Infof is Info with formatting.
func (p *Printer) Infof(format string, args ...any) {
	p.Info(fmt.Sprintf(format, args...))
}

// Successf is Success with formatting.
func (p *Printer) Successf(format string, args ...any) {
	p.Success(fmt.Sprintf(format, args...))
}

// Warningf is Warning with formatting.
func (p *Printer) Warningf(format string, args ...any) {
	p.Warning(fmt.Sprintf(format, args...))
}

// Errorf is Error with formatting.
func (p *Printer) Errorf(format string, args ...any) {
	p.Error(fmt.Sprintf(format, args...))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}
