package viewstate

import (
	"errors"
	"fmt"
	"log"

	"github.com/i474232898/weather-schedule-view/internal/weather"
)

// ErrInvalidSelection marks a screen that cannot be chosen as a tab. The
// controller itself ignores such selections; outer surfaces use this error to
// reject them.
var ErrInvalidSelection = errors.New("screen is not selectable")

// Controller is the tab-selection state machine.
type Controller struct {
	repo  weather.Repository
	store *Store
	tabs  []weather.Screen
}

// NewController derives the tabs from the repository and publishes the
// Today state before returning.
func NewController(repo weather.Repository) *Controller {
	c := &Controller{
		repo:  repo,
		store: NewStore(Empty()),
	}
	c.tabs = deriveTabs(repo.All(weather.ScaleLarge))
	c.SelectScreen(weather.Today())
	return c
}

// deriveTabs keeps the first entry of each top-level screen kind, in order.
func deriveTabs(entries []weather.ScheduledWeather) []weather.Screen {
	seen := make(map[weather.ScreenKind]bool)
	var tabs []weather.Screen
	for _, e := range entries {
		if !e.Screen.Selectable() || seen[e.Screen.Kind] {
			continue
		}
		seen[e.Screen.Kind] = true
		tabs = append(tabs, e.Screen)
	}
	return tabs
}

// Store exposes the observable state cell.
func (c *Controller) Store() *Store {
	return c.store
}

// State returns the current view state.
func (c *Controller) State() ViewState {
	return c.store.Get()
}

// Tabs returns a copy of the top-level tabs.
func (c *Controller) Tabs() []weather.Screen {
	return append([]weather.Screen(nil), c.tabs...)
}

// SelectScreen switches the view to screen and publishes the new state.
// Screens that are not tabs (Hourly) leave the state untouched.
func (c *Controller) SelectScreen(screen weather.Screen) {
	var next ViewState

	switch screen.Kind {
	case weather.ScreenToday, weather.ScreenTomorrow:
		entry, err := c.repo.FindByScreen(weather.ScaleLarge, screen)
		if err != nil {
			// the schedule is static and complete, so this is a programming error
			log.Printf("ERROR: viewstate: lookup for %s failed: %v", screen, err)
			panic(fmt.Errorf("viewstate: select %s: %w", screen, err))
		}
		next = ViewState{
			Selected: screen,
			Data:     Single(entry),
			City:     entry.Weather.Location.City,
			Scale:    weather.ScaleLarge,
		}

	case weather.ScreenNextDays:
		entries := c.repo.FilterNextDays(weather.ScaleSmall)
		if len(entries) == 0 {
			log.Printf("ERROR: viewstate: schedule has no next days for %s", screen)
			panic(fmt.Errorf("viewstate: select %s: no next days scheduled", screen))
		}
		next = ViewState{
			Selected: screen,
			Data:     Multiple(entries),
			// Always the first next day, whichever day was selected.
			City:  entries[0].Weather.Location.City,
			Scale: weather.ScaleSmall,
		}

	default:
		log.Printf("DEBUG: viewstate: ignoring selection of non-tab screen %s", screen)
		return
	}

	next.Tabs = c.Tabs()
	c.store.Publish(next)
}

// Validate returns ErrInvalidSelection for screens SelectScreen would ignore.
func Validate(screen weather.Screen) error {
	if !screen.Selectable() {
		return fmt.Errorf("%w: %s", ErrInvalidSelection, screen)
	}
	return nil
}
