package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runpace/internal/report"
	"runpace/internal/running"
)

// Screen identifiers
type Screen int

const (
	ScreenSchedule Screen = iota
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	schedule ScheduleModel
	help     HelpModel

	width  int
	height int
}

// NewApp creates the app over one race per scale
func NewApp(races []running.Race, opts report.Options) *App {
	return &App{
		screen:   ScreenSchedule,
		schedule: NewScheduleModel(races, opts, 0, 0),
		help:     NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.schedule.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	var cmd tea.Cmd
	switch a.screen {
	case ScreenSchedule:
		var m tea.Model
		m, cmd = a.schedule.Update(msg)
		a.schedule = m.(ScheduleModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	var content string
	switch a.screen {
	case ScreenSchedule:
		content = a.schedule.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), a.renderNav(), content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Race Pace Calculator")
}

func (a *App) renderNav() string {
	var nav string
	for i, race := range a.schedule.races {
		if i > 0 {
			nav += "  "
		}
		label := "[" + race.Scale().Name() + "]"
		if a.screen == ScreenSchedule && i == a.schedule.current {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[?] Help  [q] Quit")

	return navStyle.Render(nav)
}
