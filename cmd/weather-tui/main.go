package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/i474232898/weather-schedule-view/internal/config"
	"github.com/i474232898/weather-schedule-view/internal/store"
	"github.com/i474232898/weather-schedule-view/internal/tui"
	"github.com/i474232898/weather-schedule-view/internal/viewstate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Keep log output from tearing the alt screen.
	if f, err := tea.LogToFile(os.ExpandEnv("$HOME/.weather-tui.log"), "weather-tui"); err == nil {
		defer f.Close()
	}

	ctrl := viewstate.NewController(store.NewScheduleStore())
	if !cfg.InitialScreen.Equal(ctrl.State().Selected) {
		ctrl.SelectScreen(cfg.InitialScreen)
	}

	p := tea.NewProgram(tui.New(ctrl, cfg.FrameInterval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("weather-tui: %v", err)
	}
}
