package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the header shown on the confirmation screen
var Banner = []string{
	" ___  ___  _   ___ _____   ___ ___ _    ___   _   ___ ___ ",
	"|   \\| _ \\/_\\ | __|_   _| | _ \\ __| |  | __| /_\\ / __| __|",
	"| |) |   / _ \\| _|  | |   |   / _|| |__| _| / _ \\\\__ \\ _| ",
	"|___/|_|_\\_/ \\_\\_|   |_|   |_|_\\___|____|___/_/ \\_\\___/___|",
}

// RenderBanner returns the styled banner as a string
func RenderBanner(dryRun bool) string {
	bannerStyle := lipgloss.NewStyle().Foreground(ColorCyan)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	if dryRun {
		lines = append(lines, "", DryRunNotice())
	}

	return strings.Join(lines, "\n")
}

// DryRunNotice is the warning printed whenever nothing will be published
func DryRunNotice() string {
	warningStyle := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true)
	return warningStyle.Render("⚠ DRY RUN MODE")
}
