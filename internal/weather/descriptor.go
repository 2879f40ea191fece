package weather

import (
	"fmt"

	"github.com/i474232898/weather-schedule-view/internal/common"
)

// DescriptorKind is the weather condition an illustration depicts.
type DescriptorKind int

const (
	DescriptorSunny DescriptorKind = iota
	DescriptorStormy
	DescriptorRainy
	DescriptorRainbowy
	DescriptorSnowy
)

// DescriptorKinds lists every kind in declaration order.
var DescriptorKinds = []DescriptorKind{
	DescriptorSunny,
	DescriptorStormy,
	DescriptorRainy,
	DescriptorRainbowy,
	DescriptorSnowy,
}

// Shape names. A descriptor's main path drives the primary pulse; every other
// shape follows the secondary flicker.
const (
	PathRing      = "ring"
	PathRainbow   = "rainbow"
	PathCloud     = "cloud"
	PathRay       = "ray"
	PathSnowflake = "snowflake"
	PathRain      = "rain"
	PathThunder   = "thunder"
)

// Path is one named decorative shape of an illustration.
type Path struct {
	Name   string `json:"name"`
	Color  Color  `json:"color"`
	Bounds Rect   `json:"bounds"`
}

// Descriptor is a weather illustration at a given scale.
type Descriptor struct {
	Kind     DescriptorKind `json:"kind"`
	Label    string         `json:"label"`
	MainPath string         `json:"mainPath"`
	Paths    []Path         `json:"paths"`

	// SecondaryAnimation enables the flicker timeline for non-main shapes.
	SecondaryAnimation bool `json:"secondaryAnimation"`
	// Rotates enables the continuous rotation timeline.
	Rotates bool `json:"rotates"`
}

type descriptorSpec struct {
	name      string
	label     string
	mainPath  string
	secondary bool
	rotates   bool
	shapes    []Path // unit bounds on a 24x24 grid
}

var descriptorSpecs = map[DescriptorKind]descriptorSpec{
	DescriptorSunny: {
		name:      "sunny",
		label:     "Sunny",
		mainPath:  PathRing,
		secondary: true,
		rotates:   true,
		shapes: []Path{
			{Name: PathRing, Color: ColorAmber, Bounds: Rect{7, 7, 17, 17}},
			{Name: PathRay, Color: ColorOrange, Bounds: Rect{11, 1, 13, 5}},
			{Name: PathRay, Color: ColorOrange, Bounds: Rect{19, 11, 23, 13}},
			{Name: PathRay, Color: ColorOrange, Bounds: Rect{11, 19, 13, 23}},
			{Name: PathRay, Color: ColorOrange, Bounds: Rect{1, 11, 5, 13}},
		},
	},
	DescriptorStormy: {
		name:      "stormy",
		label:     "Stormy",
		mainPath:  PathCloud,
		secondary: true,
		shapes: []Path{
			{Name: PathCloud, Color: ColorSlate, Bounds: Rect{2, 5, 22, 15}},
			{Name: PathThunder, Color: ColorAmber, Bounds: Rect{10, 14, 14, 23}},
		},
	},
	DescriptorRainy: {
		name:      "rainy",
		label:     "Rainy",
		mainPath:  PathCloud,
		secondary: true,
		shapes: []Path{
			{Name: PathCloud, Color: ColorCloud, Bounds: Rect{2, 5, 22, 15}},
			{Name: PathRain, Color: ColorBlue, Bounds: Rect{6, 17, 7, 22}},
			{Name: PathRain, Color: ColorBlue, Bounds: Rect{11, 17, 12, 22}},
			{Name: PathRain, Color: ColorBlue, Bounds: Rect{16, 17, 17, 22}},
		},
	},
	DescriptorRainbowy: {
		name:     "rainbowy",
		label:    "RainbowY",
		mainPath: PathRainbow,
		shapes: []Path{
			{Name: PathRainbow, Color: ColorRed, Bounds: Rect{2, 6, 22, 18}},
			{Name: PathRainbow, Color: ColorAmber, Bounds: Rect{4, 8, 20, 18}},
			{Name: PathRainbow, Color: ColorBlue, Bounds: Rect{6, 10, 18, 18}},
		},
	},
	DescriptorSnowy: {
		name:     "snowy",
		label:    "Snowy",
		mainPath: PathCloud,
		shapes: []Path{
			{Name: PathCloud, Color: ColorCloud, Bounds: Rect{2, 5, 22, 15}},
			{Name: PathSnowflake, Color: ColorWhite, Bounds: Rect{5, 17, 8, 20}},
			{Name: PathSnowflake, Color: ColorWhite, Bounds: Rect{10, 18, 13, 21}},
			{Name: PathSnowflake, Color: ColorWhite, Bounds: Rect{15, 17, 18, 20}},
		},
	},
}

func (k DescriptorKind) String() string {
	if spec, ok := descriptorSpecs[k]; ok {
		return spec.name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k DescriptorKind) MarshalText() ([]byte, error) {
	if _, ok := descriptorSpecs[k]; !ok {
		return nil, fmt.Errorf("unknown descriptor kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// ParseDescriptorKind accepts "sunny", "Stormy", "RAINY" and so on.
func ParseDescriptorKind(s string) (DescriptorKind, error) {
	key := common.NormalizeKey(s)
	for _, kind := range DescriptorKinds {
		if descriptorSpecs[kind].name == key {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown weather descriptor %q", s)
}

// NewDescriptor builds the illustration of kind with its shapes mapped
// through scale.
func NewDescriptor(kind DescriptorKind, scale PathScale) Descriptor {
	spec, ok := descriptorSpecs[kind]
	if !ok {
		panic(fmt.Sprintf("weather: no descriptor registered for kind %d", int(kind)))
	}

	paths := make([]Path, len(spec.shapes))
	for i, shape := range spec.shapes {
		paths[i] = Path{
			Name:   shape.Name,
			Color:  shape.Color,
			Bounds: scale.Apply(shape.Bounds),
		}
	}

	return Descriptor{
		Kind:               kind,
		Label:              spec.label,
		MainPath:           spec.mainPath,
		Paths:              paths,
		SecondaryAnimation: spec.secondary,
		Rotates:            spec.rotates,
	}
}

// Main returns the first shape named after the descriptor's main path.
func (d Descriptor) Main() (Path, bool) {
	for _, p := range d.Paths {
		if p.Name == d.MainPath {
			return p, true
		}
	}
	return Path{}, false
}

// IsMain reports whether p is driven by the primary pulse.
func (d Descriptor) IsMain(p Path) bool {
	return p.Name == d.MainPath
}
