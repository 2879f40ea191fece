package animation

import (
	"time"

	"github.com/i474232898/weather-schedule-view/internal/weather"
)

const (
	PrimaryTarget     = 0.8
	PrimaryLeg        = 400 * time.Millisecond
	PrimaryIterations = 2

	SecondaryTarget     = 0.7
	SecondaryLeg        = 50 * time.Millisecond
	SecondaryIterations = 15

	RotationPeriod = 3000 * time.Millisecond
)

// PrimaryTimeline is the two-pulse glow of a descriptor's main shape.
func PrimaryTimeline() Timeline {
	return Timeline{
		From:       0,
		To:         PrimaryTarget,
		Duration:   PrimaryLeg,
		Easing:     FastOutSlowIn,
		Iterations: PrimaryIterations,
		Reverse:    true,
	}
}

// SecondaryTimeline is the rapid flicker of the non-main shapes.
func SecondaryTimeline() Timeline {
	return Timeline{
		From:       0,
		To:         SecondaryTarget,
		Duration:   SecondaryLeg,
		Easing:     LinearOutSlowIn,
		Iterations: SecondaryIterations,
		Reverse:    true,
	}
}

// RotationTimeline turns once per period, forever, restarting from zero.
func RotationTimeline() Timeline {
	return Timeline{
		From:     0,
		To:       1,
		Duration: RotationPeriod,
		Easing:   Linear,
	}
}

// Plan holds the timelines of one descriptor. Disabled timelines sample as
// zero.
type Plan struct {
	Primary   Timeline
	Secondary *Timeline
	Rotation  *Timeline
}

// PlanFor builds the timelines a descriptor declares. When the flicker is
// enabled the pulse starts once the flicker has finished.
func PlanFor(d weather.Descriptor) Plan {
	plan := Plan{Primary: PrimaryTimeline()}

	if d.SecondaryAnimation {
		secondary := SecondaryTimeline()
		plan.Secondary = &secondary
		total, _ := secondary.Total()
		plan.Primary.Delay = total
	}
	if d.Rotates {
		rotation := RotationTimeline()
		plan.Rotation = &rotation
	}
	return plan
}

// Progress is one sample of every timeline of a plan.
type Progress struct {
	Primary   float64 `json:"primary"`
	Secondary float64 `json:"secondary"`
	Rotation  float64 `json:"rotation"`
}

// Sample evaluates the plan at elapsed time since mount.
func (p Plan) Sample(elapsed time.Duration) Progress {
	progress := Progress{Primary: p.Primary.Sample(elapsed)}
	if p.Secondary != nil {
		progress.Secondary = p.Secondary.Sample(elapsed)
	}
	if p.Rotation != nil {
		progress.Rotation = p.Rotation.Sample(elapsed)
	}
	return progress
}

// Settled reports whether no timeline of the plan will change any more.
func (p Plan) Settled(elapsed time.Duration) bool {
	if p.Rotation != nil {
		return false
	}
	if p.Secondary != nil && !p.Secondary.Done(elapsed) {
		return false
	}
	return p.Primary.Done(elapsed)
}
