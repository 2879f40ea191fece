package animation

import "math"

// Easing maps a linear fraction in [0,1] to an eased fraction.
type Easing func(fraction float64) float64

// Linear leaves the fraction unchanged.
func Linear(fraction float64) float64 { return fraction }

var (
	// FastOutSlowIn accelerates from rest and decelerates into the target.
	FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)
	// LinearOutSlowIn starts at full speed and decelerates into the target.
	LinearOutSlowIn = CubicBezier(0, 0, 0.2, 1)
)

// CubicBezier returns the easing defined by a cubic Bézier curve from (0,0)
// to (1,1) with control points (x1,y1) and (x2,y2).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(fraction float64) float64 {
		if fraction <= 0 {
			return 0
		}
		if fraction >= 1 {
			return 1
		}

		// x(t) is monotonic for x1, x2 in [0,1], so bisection always converges.
		lo, hi := 0.0, 1.0
		for i := 0; i < 64 && hi-lo > 1e-12; i++ {
			mid := (lo + hi) / 2
			if bezier(mid, x1, x2) < fraction {
				lo = mid
			} else {
				hi = mid
			}
		}
		return math.Max(0, math.Min(1, bezier((lo+hi)/2, y1, y2)))
	}
}

// bezier evaluates one coordinate of a cubic Bézier with endpoints 0 and 1.
func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}
