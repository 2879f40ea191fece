package weather

import (
	"fmt"

	"github.com/i474232898/weather-schedule-view/internal/common"
)

const (
	LargeScale   = 8.0
	SmallScale   = 6.0
	LargePadding = -15.0
	SmallPadding = -12.0
)

// PathScale scales the unit geometry of a shape and shifts it by a padding.
type PathScale struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	PX float64 `json:"px"`
	PY float64 `json:"py"`
}

// Apply maps a rectangle from unit icon space into scaled space.
func (p PathScale) Apply(r Rect) Rect {
	return Rect{
		MinX: r.MinX*p.X + p.PX,
		MinY: r.MinY*p.Y + p.PY,
		MaxX: r.MaxX*p.X + p.PX,
		MaxY: r.MaxY*p.Y + p.PY,
	}
}

// ScalePreset selects the icon geometry: Large for a single day, Small for
// the multi-day grid.
type ScalePreset int

const (
	ScaleLarge ScalePreset = iota
	ScaleSmall
)

func (s ScalePreset) Config() PathScale {
	if s == ScaleSmall {
		return PathScale{X: SmallScale, Y: SmallScale, PX: SmallPadding}
	}
	return PathScale{X: LargeScale, Y: LargeScale, PX: LargePadding}
}

func (s ScalePreset) String() string {
	if s == ScaleSmall {
		return "small"
	}
	return "large"
}

// MarshalText implements encoding.TextMarshaler.
func (s ScalePreset) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseScalePreset parses "large" or "small"; an empty string means large.
func ParseScalePreset(s string) (ScalePreset, error) {
	switch common.NormalizeKey(s) {
	case "", "large":
		return ScaleLarge, nil
	case "small":
		return ScaleSmall, nil
	default:
		return ScaleLarge, fmt.Errorf("unknown scale %q", s)
	}
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Center returns the geometric centre of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
