package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes the styled status lines a run shows the user
type Printer struct {
	Out io.Writer
}

func (p Printer) line(status, msg string) {
	icon, color := StatusIcon(status)
	fmt.Fprintf(p.Out, "%s %s\n", lipgloss.NewStyle().Foreground(color).Render(icon), msg)
}

// Success prints a green check line
func (p Printer) Success(format string, args ...any) {
	p.line("success", fmt.Sprintf(format, args...))
}

// Skipped prints a yellow skipped line
func (p Printer) Skipped(format string, args ...any) {
	p.line("skipped", fmt.Sprintf(format, args...))
}

// Info prints an unstyled line
func (p Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Version prints the detected-version confirmation line
func (p Printer) Version(version string) {
	bold := lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	p.Success("Detected version %s", bold.Render(version))
}
