// Package ui owns all user-facing console output and interactive prompting.
// Structured diagnostics stay on slog; this package writes to stdout.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	phaseColor   = color.New(color.FgCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen, color.Bold)
	hintColor    = color.New(color.Faint)
)

// Printer reports progress phases and results to the user. Output is purely
// observational and never affects control flow.
type Printer struct {
	out io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stdout}
}

func NewPrinterTo(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Phase announces a discrete labeled step of a longer operation.
func (p *Printer) Phase(label string) {
	phaseColor.Fprintf(p.out, "▸ %s\n", label)
}

func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Warn surfaces a non-fatal failure. Warnings are always visible even when
// the operation continues.
func (p *Printer) Warn(format string, args ...any) {
	warnColor.Fprintf(p.out, "warning: "+format+"\n", args...)
}

func (p *Printer) Success(format string, args ...any) {
	successColor.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Hint(format string, args ...any) {
	hintColor.Fprintf(p.out, "  "+format+"\n", args...)
}
