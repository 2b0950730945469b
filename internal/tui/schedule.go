package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runpace/internal/report"
	"runpace/internal/running"
)

const (
	chromeHeight = 6
	maxDegree    = 60 * time.Second
)

// ScheduleModel shows one race's summary and split schedule at a time
type ScheduleModel struct {
	races    []running.Race
	current  int
	opts     report.Options
	summary  report.Summary
	viewport viewport.Model
	err      error
	width    int
	height   int
	ready    bool
}

// NewScheduleModel creates a new schedule model
func NewScheduleModel(races []running.Race, opts report.Options, width, height int) ScheduleModel {
	m := ScheduleModel{
		races:  races,
		opts:   opts,
		width:  width,
		height: height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-chromeHeight)
		m.ready = true
	}
	m.rebuild()

	return m
}

// Init initializes the schedule screen
func (m ScheduleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ScheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.rebuild()

	case tea.KeyMsg:
		changed := true
		switch msg.String() {
		case "tab":
			if len(m.races) > 0 {
				m.current = (m.current + 1) % len(m.races)
			}
		case "u":
			m.opts.Kind = running.Uniform
		case "n":
			m.opts.Kind = running.Negative
		case "p":
			m.opts.Kind = running.Positive
		case "+", "=":
			if m.opts.Degree < maxDegree {
				m.opts.Degree += time.Second
			}
		case "-":
			if m.opts.Degree > 0 {
				m.opts.Degree -= time.Second
			}
		case "c":
			m.opts.Chart = !m.opts.Chart
		default:
			changed = false
		}
		if changed {
			m.rebuild()
			return m, nil
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the schedule screen
func (m ScheduleModel) View() string {
	if m.err != nil {
		return report.ErrorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  tab: scale  u/n/p: schedule  +/-: degree  c: chart  j/k: scroll")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m *ScheduleModel) rebuild() {
	if len(m.races) == 0 {
		m.err = fmt.Errorf("no race to show")
		return
	}

	summary, err := report.Build(m.races[m.current], m.opts)
	m.err = err
	if err != nil {
		return
	}
	m.summary = summary
	if m.ready {
		m.viewport.SetContent(report.Render(summary, m.opts))
	}
}
