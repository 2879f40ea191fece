package animation

import (
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-schedule-view/internal/weather"
)

// ShapeFrame is how one shape should be drawn in a frame.
type ShapeFrame struct {
	Name   string        `json:"name"`
	Color  weather.Color `json:"color"`
	Bounds weather.Rect  `json:"bounds"`
	Alpha  float64       `json:"alpha"`
	// Rotation in degrees about Pivot.
	Rotation float64       `json:"rotation"`
	Pivot    weather.Point `json:"pivot"`
}

// Frame is the drawing state of one mounted descriptor.
type Frame struct {
	ID         uuid.UUID              `json:"id"`
	Key        string                 `json:"key"`
	Descriptor weather.DescriptorKind `json:"descriptor"`
	Elapsed    time.Duration          `json:"elapsedNs"`
	Progress   Progress               `json:"progress"`
	Shapes     []ShapeFrame           `json:"shapes"`
}

// Animator drives the timelines of one displayed descriptor from the moment
// it was mounted.
type Animator struct {
	id         uuid.UUID
	key        string
	descriptor weather.Descriptor
	plan       Plan
	mountedAt  time.Duration
	pivot      weather.Point
}

// NewAnimator starts the timelines of d at clock reading now.
func NewAnimator(key string, d weather.Descriptor, now time.Duration) *Animator {
	a := &Animator{
		id:         uuid.New(),
		key:        key,
		descriptor: d,
		plan:       PlanFor(d),
		mountedAt:  now,
	}
	if main, ok := d.Main(); ok {
		a.pivot = main.Bounds.Center()
	}
	return a
}

func (a *Animator) ID() uuid.UUID { return a.id }

func (a *Animator) Key() string { return a.key }

// Frame samples the animator at clock reading now. Readings before the
// mount are treated as the mount instant.
func (a *Animator) Frame(now time.Duration) Frame {
	elapsed := now - a.mountedAt
	if elapsed < 0 {
		elapsed = 0
	}
	progress := a.plan.Sample(elapsed)

	shapes := make([]ShapeFrame, len(a.descriptor.Paths))
	for i, p := range a.descriptor.Paths {
		alpha := progress.Secondary
		if a.descriptor.IsMain(p) {
			alpha = progress.Primary
		}
		shapes[i] = ShapeFrame{
			Name:     p.Name,
			Color:    p.Color,
			Bounds:   p.Bounds,
			Alpha:    alpha,
			Rotation: progress.Rotation * 360,
			Pivot:    a.pivot,
		}
	}

	return Frame{
		ID:         a.id,
		Key:        a.key,
		Descriptor: a.descriptor.Kind,
		Elapsed:    elapsed,
		Progress:   progress,
		Shapes:     shapes,
	}
}
