package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Schedule", []keyHelp{
		{"tab", "Switch metric / imperial"},
		{"u", "Uniform splits"},
		{"n", "Negative splits (slow start)"},
		{"p", "Positive splits (fast start)"},
		{"+ / -", "Change degree by one second"},
		{"c", "Toggle pace chart"},
		{"j / k", "Scroll"},
	}))

	sections = append(sections, m.renderSection("General", []keyHelp{
		{"?", "Help (this screen)"},
		{"esc", "Close help"},
		{"q", "Quit"},
	}))

	sections = append(sections, m.renderTerms())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string
	lines = append(lines, helpKeyStyle.Render(title))
	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(padRight(k.key, 8), k.desc))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m HelpModel) renderTerms() string {
	lines := []string{
		helpKeyStyle.Render("Terms"),
		"  " + helpDescStyle.Render("Degree: seconds between the average pace and the first split"),
		"  " + helpDescStyle.Render("Block: splits held at one pace before stepping by a second"),
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
