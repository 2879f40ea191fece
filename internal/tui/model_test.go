package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/i474232898/weather-schedule-view/internal/store"
	"github.com/i474232898/weather-schedule-view/internal/viewstate"
	"github.com/i474232898/weather-schedule-view/internal/weather"
)

func newModel(t *testing.T) (Model, *viewstate.Controller) {
	t.Helper()
	ctrl := viewstate.NewController(store.NewScheduleStore())
	return New(ctrl, 10*time.Millisecond), ctrl
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestArrowKeysCycleTabs(t *testing.T) {
	m, ctrl := newModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if !ctrl.State().Selected.Equal(weather.Tomorrow()) {
		t.Fatalf("expected tomorrow, got %s", ctrl.State().Selected)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if ctrl.State().Selected.Kind != weather.ScreenNextDays {
		t.Fatalf("expected next days, got %s", ctrl.State().Selected)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if !ctrl.State().Selected.Equal(weather.Today()) {
		t.Fatalf("expected wrap to today, got %s", ctrl.State().Selected)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if ctrl.State().Selected.Kind != weather.ScreenNextDays {
		t.Fatalf("expected wrap back to next days, got %s", ctrl.State().Selected)
	}
}

func TestNumberKeysJumpToTab(t *testing.T) {
	m, ctrl := newModel(t)

	press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if ctrl.State().Selected.Kind != weather.ScreenNextDays {
		t.Fatalf("expected next days, got %s", ctrl.State().Selected)
	}
}

func TestViewShowsTabsAndCards(t *testing.T) {
	m, _ := newModel(t)

	view := m.View()
	for _, want := range []string{"TODAY", "TOMORROW", "NEXT DAYS", store.DefaultCity, "The Weather Today is Sunny", "21°"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	view = m.View()
	for _, want := range []string{"Wednesday", "Monday", "RainbowY"} {
		if !strings.Contains(view, want) {
			t.Errorf("grid view missing %q", want)
		}
	}
}

func TestFrameTicksReschedule(t *testing.T) {
	m, _ := newModel(t)

	if m.Init() == nil {
		t.Fatal("expected Init to start the frame clock")
	}
	_, cmd := m.Update(FrameMsg{Time: time.Now()})
	if cmd == nil {
		t.Fatal("expected a frame tick to schedule the next one")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(Model).View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestGlow(t *testing.T) {
	if got := glow(weather.ColorDarkGray, 0); got != "#444444" {
		t.Errorf("glow(alpha 0) = %s", got)
	}
	if got := glow(weather.ColorDarkGray, 1); got != "#FFFFFF" {
		t.Errorf("glow(alpha 1) = %s", got)
	}
}
