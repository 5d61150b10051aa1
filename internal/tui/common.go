package tui

import "github.com/charmbracelet/lipgloss"

// Palette matching the fatih/color status helpers.
var (
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}
	ColorCyan   = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}
	ColorGray   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
)

var (
	// StyleTitle frames the heading of the info report.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	// StyleHelp is for hints under a report.
	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)
)

// Title renders s in the title box.
func Title(s string) string {
	return StyleTitle.Render(s)
}
