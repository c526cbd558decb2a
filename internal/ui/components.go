package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// YesNoButtons creates interactive Yes/No buttons
// selection: 0 for Yes, 1 for No
func YesNoButtons(selection int) string {
	yesColor, noColor := ColorDarkGray, ColorDarkGray
	yesText, noText := ColorWhite, ColorWhite
	iconYes, iconNo := " ", " "

	if selection == 0 {
		yesColor, yesText, iconYes = ColorGreen, ColorGreen, ">"
	}
	if selection == 1 {
		noColor, noText, iconNo = ColorRed, ColorRed, ">"
	}

	yesStyle := lipgloss.NewStyle().Foreground(yesColor)
	yesTextStyle := lipgloss.NewStyle().Foreground(yesText).Bold(true)
	noStyle := lipgloss.NewStyle().Foreground(noColor)
	noTextStyle := lipgloss.NewStyle().Foreground(noText).Bold(true)

	line1 := yesStyle.Render("  ┌────────┐") + " " + noStyle.Render("┌───────┐")
	line2 := yesStyle.Render("  │") +
		yesTextStyle.Render(fmt.Sprintf(" %s  YES ", yesStyle.Render(iconYes))) +
		yesStyle.Render("│") + " " +
		noStyle.Render("│") +
		noTextStyle.Render(fmt.Sprintf(" %s  NO ", noStyle.Render(iconNo))) +
		noStyle.Render("│")
	line3 := yesStyle.Render("  └────────┘") + " " + noStyle.Render("└───────┘")

	return line1 + "\n" + line2 + "\n" + line3
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// StatusIcon returns the appropriate status icon and color
func StatusIcon(status string) (string, lipgloss.Color) {
	switch status {
	case "success":
		return "✓", ColorGreen
	case "skipped":
		return "⊘", ColorYellow
	case "failed", "error":
		return "✗", ColorRed
	default:
		return "·", ColorWhite
	}
}

// NotesPreview renders release notes inside a rounded box.
// At most maxLines lines are shown; the rest is summarised.
func NotesPreview(notes string, maxLines int) string {
	if notes == "" {
		return lipgloss.NewStyle().Foreground(ColorDarkGray).Italic(true).Render("  (no release notes)")
	}

	lines := strings.Split(notes, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		hidden := len(lines) - maxLines
		lines = append(lines[:maxLines], fmt.Sprintf("… %d more", hidden))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorCyan).
		Padding(0, 1).
		MarginLeft(2).
		Render(strings.Join(lines, "\n"))
}
