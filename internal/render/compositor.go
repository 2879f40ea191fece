package render

import (
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-schedule-view/internal/animation"
	"github.com/i474232898/weather-schedule-view/internal/viewstate"
	"github.com/i474232898/weather-schedule-view/internal/weather"
)

// Card is one visible schedule entry with its current animation frame.
// Description is the accessible text of the card's illustration.
type Card struct {
	Key         string                   `json:"key"`
	Label       string                   `json:"label"`
	Description string                   `json:"description"`
	Entry       weather.ScheduledWeather `json:"entry"`
	Frame       animation.Frame          `json:"frame"`
	Settled     bool                     `json:"settled"`
}

// Scene is an immutable snapshot of everything on display.
type Scene struct {
	State   viewstate.ViewState `json:"state"`
	Layout  string              `json:"layout"`
	Cards   []Card              `json:"cards"`
	Elapsed time.Duration       `json:"elapsedNs"`
}

// Compositor keeps one animator mounted per visible card and turns frame
// clock ticks into scenes.
type Compositor struct {
	store *viewstate.Store
	stage *animation.Stage
	subID uuid.UUID

	mu      sync.RWMutex
	closed  bool
	now     time.Duration
	state   viewstate.ViewState
	entries []weather.ScheduledWeather
	keys    []string
	scene   Scene
}

// NewCompositor mounts the current state of store and follows its updates.
func NewCompositor(store *viewstate.Store) *Compositor {
	c := &Compositor{
		store: store,
		stage: animation.NewStage(),
	}
	c.apply(store.Get())
	c.subID = store.Subscribe(c.apply)
	return c
}

// CardKey identifies a card across states: re-publishing the same screen
// keeps its animators running instead of restarting them.
func CardKey(entry weather.ScheduledWeather) string {
	return entry.Screen.String() + "/" + entry.Weather.Descriptor.Kind.String()
}

// Describe names the weather an entry illustrates, e.g. "The Weather Today
// is Sunny".
func Describe(entry weather.ScheduledWeather) string {
	return fmt.Sprintf("The Weather %s is %s", entry.Screen.Label(), entry.Weather.Descriptor.Label)
}

func (c *Compositor) apply(v viewstate.ViewState) {
	entries := v.Data.Entries()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = CardKey(e)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if !slices.Equal(keys, c.keys) {
		c.stage.UnmountAll()
		for i, e := range entries {
			c.stage.Mount(keys[i], e.Weather.Descriptor, c.now)
		}
		log.Printf("DEBUG: render: mounted %d cards for %s", len(entries), v.Selected)
	}
	c.state = v
	c.entries = entries
	c.keys = keys
	c.scene = c.compose()
}

// Tick advances the compositor to clock reading now and publishes a new scene.
func (c *Compositor) Tick(now time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
	c.scene = c.compose()
}

// compose builds the scene for the current clock reading. Callers hold mu.
func (c *Compositor) compose() Scene {
	frames := c.stage.Frames(c.now)
	cards := make([]Card, 0, len(frames))
	for i, frame := range frames {
		if i >= len(c.entries) {
			break
		}
		entry := c.entries[i]
		cards = append(cards, Card{
			Key:         frame.Key,
			Label:       entry.Screen.Label(),
			Description: Describe(entry),
			Entry:       entry,
			Frame:       frame,
			Settled:     animation.PlanFor(entry.Weather.Descriptor).Settled(frame.Elapsed),
		})
	}

	return Scene{
		State:   c.state,
		Layout:  LayoutFor(c.state),
		Cards:   cards,
		Elapsed: c.now,
	}
}

// Scene returns the latest scene.
func (c *Compositor) Scene() Scene {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scene
}

// Close stops following the store and tears down every animator.
func (c *Compositor) Close() {
	c.store.Unsubscribe(c.subID)

	c.mu.Lock()
	c.closed = true
	c.stage.UnmountAll()
	c.keys = nil
	c.entries = nil
	c.scene = Scene{State: c.state, Layout: LayoutFor(c.state), Elapsed: c.now}
	c.mu.Unlock()
}

const (
	LayoutLargeCard = "large_card"
	LayoutGrid      = "grid"
	LayoutEmpty     = "empty"
)

// LayoutFor picks a single large card or a grid of small ones.
func LayoutFor(v viewstate.ViewState) string {
	switch v.Data.Kind() {
	case viewstate.DataSingle:
		return LayoutLargeCard
	case viewstate.DataMultiple:
		return LayoutGrid
	default:
		return LayoutEmpty
	}
}
