package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"runpace/internal/report"
	"runpace/internal/running"
)

func testRaces(t *testing.T) []running.Race {
	t.Helper()
	m, err := running.NewRace(running.Metric, 42195, 4*time.Hour)
	if err != nil {
		t.Fatalf("NewRace() error: %v", err)
	}
	i, err := running.NewRace(running.Imperial, 46112, 4*time.Hour)
	if err != nil {
		t.Fatalf("NewRace() error: %v", err)
	}
	return []running.Race{m, i}
}

func key(s string) tea.KeyMsg {
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m ScheduleModel, msg tea.Msg) ScheduleModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(ScheduleModel)
}

func TestScheduleModel_Keys(t *testing.T) {
	m := NewScheduleModel(testRaces(t), report.Options{Kind: running.Uniform, Degree: 5 * time.Second}, 100, 60)
	if m.err != nil {
		t.Fatalf("initial build error: %v", m.err)
	}
	if m.summary.Splits[0] != 341*time.Second {
		t.Errorf("uniform first split = %v, want 5m41s", m.summary.Splits[0])
	}

	m = update(t, m, key("n"))
	if m.opts.Kind != running.Negative || m.summary.Splits[0] != 346*time.Second {
		t.Errorf("after n: kind %v first %v, want negative 5m46s", m.opts.Kind, m.summary.Splits[0])
	}

	m = update(t, m, key("+"))
	if m.opts.Degree != 6*time.Second || m.summary.Splits[0] != 347*time.Second {
		t.Errorf("after +: degree %v first %v, want 6s 5m47s", m.opts.Degree, m.summary.Splits[0])
	}

	m = update(t, m, key("tab"))
	if m.current != 1 || m.summary.Scale != running.Imperial {
		t.Errorf("after tab: current %d scale %v, want imperial", m.current, m.summary.Scale)
	}
	if m.summary.Splits[0] != (549+6)*time.Second {
		t.Errorf("imperial first split = %v, want 9m15s", m.summary.Splits[0])
	}

	m = update(t, m, key("p"))
	if m.summary.Splits[0] != (549-6)*time.Second {
		t.Errorf("positive first split = %v, want 9m3s", m.summary.Splits[0])
	}

	m = update(t, m, key("tab"))
	if m.current != 0 {
		t.Errorf("tab should wrap to metric, got %d", m.current)
	}
}

func TestScheduleModel_DegreeFloor(t *testing.T) {
	m := NewScheduleModel(testRaces(t), report.Options{Kind: running.Negative}, 100, 60)
	m = update(t, m, key("-"))
	if m.opts.Degree != 0 {
		t.Errorf("degree went below zero: %v", m.opts.Degree)
	}
}

func TestScheduleModel_View(t *testing.T) {
	m := NewScheduleModel(testRaces(t), report.Options{Kind: running.Uniform}, 0, 0)
	if !strings.Contains(m.View(), "Initializing") {
		t.Errorf("View() before sizing = %q, want Initializing", m.View())
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})
	if !strings.Contains(m.View(), "Metric race") {
		t.Errorf("View() after sizing missing race card")
	}

	empty := NewScheduleModel(nil, report.Options{}, 100, 60)
	if !strings.Contains(empty.View(), "Error") {
		t.Errorf("View() without races = %q, want error", empty.View())
	}
}

func TestApp_HelpToggle(t *testing.T) {
	app := NewApp(testRaces(t), report.Options{})

	app.Update(key("?"))
	if app.screen != ScreenHelp {
		t.Fatalf("screen = %v, want help", app.screen)
	}
	if !strings.Contains(app.View(), "Keyboard Shortcuts") {
		t.Error("help view missing title")
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.screen != ScreenSchedule {
		t.Errorf("screen = %v, want schedule", app.screen)
	}

	_, cmd := app.Update(key("q"))
	if cmd == nil {
		t.Error("q should return a quit command")
	}
}
