// Package tui provides terminal output for the game.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to the player's terminal.
type Printer struct {
	out io.Writer
	err io.Writer

	trace   lipgloss.Style
	debug   lipgloss.Style
	info    lipgloss.Style
	warning lipgloss.Style
	errorSt lipgloss.Style
}

// NewPrinter builds a Printer. Colour support is detected per writer, so
// buffers and pipes receive plain text.
func NewPrinter(out, errOut io.Writer) *Printer {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return &Printer{
		out:     out,
		err:     errOut,
		trace:   outR.NewStyle().Foreground(lipgloss.Color("#5C8DFF")).Bold(true).TabWidth(lipgloss.NoTabConversion),
		debug:   outR.NewStyle().Foreground(lipgloss.Color("#C678DD")).Bold(true),
		info:    outR.NewStyle().Foreground(lipgloss.Color("#7EC16E")).Bold(true),
		warning: outR.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true),
		errorSt: errR.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
	}
}

// Out returns the primary writer.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Trace styles challenge text.
func (p *Printer) Trace(s string) string { return p.trace.Render(s) }

// Debug styles hints.
func (p *Printer) Debug(s string) string { return p.debug.Render(s) }

// Info styles good news.
func (p *Printer) Info(s string) string { return p.info.Render(s) }

// Warning styles bad news that is not an error.
func (p *Printer) Warning(s string) string { return p.warning.Render(s) }

// Printf writes to the primary writer.
func (p *Printer) Printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		// Best-effort terminal output.
		_ = err
	}
}

// Println writes a line to the primary writer.
func (p *Printer) Println(args ...any) {
	if _, err := fmt.Fprintln(p.out, args...); err != nil {
		// Best-effort terminal output.
		_ = err
	}
}

// Errorf writes an error-styled line to the error writer.
func (p *Printer) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if _, err := fmt.Fprintln(p.err, p.errorSt.Render(msg)); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

// Lines writes each line with a fixed indent.
func (p *Printer) Lines(indent string, lines []string) {
	for _, line := range lines {
		p.Printf("%s%s\n", indent, line)
	}
}
