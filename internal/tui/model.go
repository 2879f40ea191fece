// Package tui renders the weather schedule in a terminal. It is the
// interactive counterpart of the HTTP scene endpoint: the same controller and
// compositor drive it, and bubbletea ticks act as the frame clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/i474232898/weather-schedule-view/internal/render"
	"github.com/i474232898/weather-schedule-view/internal/viewstate"
)

// FrameMsg is delivered on every frame clock tick.
type FrameMsg struct {
	Time time.Time
}

// Model is the root bubbletea model.
type Model struct {
	ctrl     *viewstate.Controller
	comp     *render.Compositor
	interval time.Duration
	started  time.Time
	width    int
	quitting bool
}

// New creates a model that follows ctrl and redraws every interval.
func New(ctrl *viewstate.Controller, interval time.Duration) Model {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return Model{
		ctrl:     ctrl,
		comp:     render.NewCompositor(ctrl.Store()),
		interval: interval,
		started:  time.Now(),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles key presses, resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.comp.Close()
			return m, tea.Quit
		case "right", "l", "tab":
			m.selectTab(m.selectedTab() + 1)
		case "left", "h", "shift+tab":
			m.selectTab(m.selectedTab() - 1)
		case "1", "2", "3":
			m.selectTab(int(msg.String()[0] - '1'))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case FrameMsg:
		if m.quitting {
			return m, nil
		}
		m.comp.Tick(msg.Time.Sub(m.started))
		return m, m.tick()
	}

	return m, nil
}

func (m Model) selectedTab() int {
	return m.ctrl.State().Selected.Position()
}

// selectTab wraps around the tab row.
func (m Model) selectTab(i int) {
	tabs := m.ctrl.Tabs()
	if len(tabs) == 0 {
		return
	}
	i = (i%len(tabs) + len(tabs)) % len(tabs)
	m.ctrl.SelectScreen(tabs[i])
}

// View renders the current scene.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderScene(m.comp.Scene(), m.width)
}
