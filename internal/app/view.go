package app

import (
	"strings"

	"github.com/wahlandcase/draftrel/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

const notesPreviewLines = 12

// View renders the confirmation screen
func (m Model) View() string {
	if m.done {
		return ""
	}

	label := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	value := lipgloss.NewStyle().Foreground(ui.ColorWhite).Bold(true)

	var b strings.Builder
	b.WriteString(ui.RenderBanner(m.dryRun))
	b.WriteString("\n\n")
	b.WriteString(ui.SectionHeader("RELEASE", ui.ColorCyan))
	b.WriteString("\n\n")
	b.WriteString("  " + label.Render("Build file ") + value.Render(m.buildFile) + "\n")
	b.WriteString("  " + label.Render("Tag        ") + value.Render(m.request.Tag) + "\n")
	b.WriteString("  " + label.Render("Title      ") + value.Render(m.request.Title) + "\n")

	kind := "draft"
	if m.request.Prerelease {
		kind = "draft, pre-release"
	}
	b.WriteString("  " + label.Render("Type       ") + value.Render(kind) + "\n\n")

	b.WriteString(ui.SectionHeader("NOTES", ui.ColorMagenta))
	b.WriteString("\n\n")
	b.WriteString(ui.NotesPreview(m.request.Notes, notesPreviewLines))
	b.WriteString("\n\n")

	b.WriteString("  Create this release?\n\n")
	b.WriteString(ui.YesNoButtons(m.confirmSelection))
	b.WriteString("\n\n")
	b.WriteString("  " + strings.Join([]string{
		ui.KeyBinding("←/→", "select", ui.ColorCyan),
		ui.KeyBinding("enter", "confirm", ui.ColorGreen),
		ui.KeyBinding("y/n", "answer", ui.ColorYellow),
		ui.KeyBinding("q", "cancel", ui.ColorRed),
	}, "  "))
	b.WriteString("\n")

	return b.String()
}
