package tui

import (
	"github.com/charmbracelet/lipgloss"

	"runpace/internal/report"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(report.TextColor).
			Background(report.PrimaryColor).
			Padding(0, 1).
			MarginBottom(1)

	navStyle = lipgloss.NewStyle().
			Foreground(report.MutedColor).
			MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(report.PrimaryColor)

	navInactiveStyle = lipgloss.NewStyle().
				Foreground(report.MutedColor)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(report.PrimaryColor).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(report.MutedColor).
			MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(report.PrimaryColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(report.MutedColor)
)

// RenderKeyHelp renders a key binding help item
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}
