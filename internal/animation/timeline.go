package animation

import (
	"math"
	"time"
)

// Timeline describes an animated value as a pure function of elapsed time.
// Each iteration is one leg from From to To lasting Duration. With Reverse
// set, every other leg runs backwards. Iterations of zero repeat forever.
type Timeline struct {
	From       float64
	To         float64
	Duration   time.Duration
	Easing     Easing
	Iterations int
	Reverse    bool
	// Delay holds the timeline at From before the first leg starts.
	Delay time.Duration
}

// Infinite reports whether the timeline repeats forever.
func (tl Timeline) Infinite() bool {
	return tl.Iterations <= 0
}

// Total is the time from start until the final value is reached, delay
// included. It returns false for infinite timelines.
func (tl Timeline) Total() (time.Duration, bool) {
	if tl.Infinite() {
		return 0, false
	}
	return tl.Delay + time.Duration(tl.Iterations)*tl.Duration, true
}

// Done reports whether a finite timeline has settled on its final value.
func (tl Timeline) Done(elapsed time.Duration) bool {
	total, ok := tl.Total()
	return ok && elapsed >= total
}

// Final is the value a finite timeline holds once done.
func (tl Timeline) Final() float64 {
	if tl.Reverse && tl.Iterations%2 == 0 {
		return tl.From
	}
	return tl.To
}

// Sample returns the value at elapsed time since the timeline started.
func (tl Timeline) Sample(elapsed time.Duration) float64 {
	t := elapsed - tl.Delay
	if t <= 0 || tl.Duration <= 0 {
		return tl.From
	}
	if tl.Done(elapsed) {
		return tl.Final()
	}

	iteration := int64(t / tl.Duration)
	fraction := float64(t%tl.Duration) / float64(tl.Duration)
	if tl.Reverse && iteration%2 == 1 {
		fraction = 1 - fraction
	}

	return tl.clamp(tl.From + (tl.To-tl.From)*tl.ease(fraction))
}

func (tl Timeline) ease(fraction float64) float64 {
	if tl.Easing == nil {
		return fraction
	}
	return tl.Easing(fraction)
}

func (tl Timeline) clamp(v float64) float64 {
	lo, hi := math.Min(tl.From, tl.To), math.Max(tl.From, tl.To)
	return math.Max(lo, math.Min(hi, v))
}
