package weather

import "fmt"

// Color is a 32-bit ARGB colour.
type Color uint32

const (
	ColorDarkGray Color = 0xFF444444
	ColorAmber    Color = 0xFFFFC107
	ColorOrange   Color = 0xFFFF9800
	ColorSlate    Color = 0xFF607D8B
	ColorCloud    Color = 0xFFCFD8DC
	ColorBlue     Color = 0xFF2196F3
	ColorRed      Color = 0xFFF44336
	ColorWhite    Color = 0xFFFFFFFF
)

// Hex returns the colour as #RRGGBB, dropping the alpha channel.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Location represents the place a schedule entry describes.
type Location struct {
	City string `json:"city"`
}

// Temperature holds display-ready values, degree sign included.
type Temperature struct {
	Current string `json:"current"`
	Low     string `json:"low"`
	High    string `json:"high"`
}

// Weather is the immutable description of one scheduled slot.
type Weather struct {
	Descriptor  Descriptor  `json:"descriptor"`
	Location    Location    `json:"location"`
	Temperature Temperature `json:"temperature"`
	Color       Color       `json:"color"`
	Wind        string      `json:"wind"`
}

// ScheduledWeather binds a screen to its weather. PartsOfDay is only filled
// for Today and Tomorrow.
type ScheduledWeather struct {
	Screen     Screen             `json:"screen"`
	Weather    Weather            `json:"weather"`
	PartsOfDay []ScheduledWeather `json:"partsOfDay,omitempty"`
}
