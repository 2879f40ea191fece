package weather

import (
	"fmt"

	"github.com/i474232898/weather-schedule-view/internal/common"
)

// ScreenKind identifies which part of the schedule a screen shows.
type ScreenKind int

const (
	ScreenToday ScreenKind = iota
	ScreenTomorrow
	ScreenNextDays
	ScreenHourly
)

var screenKindNames = map[ScreenKind]string{
	ScreenToday:    "today",
	ScreenTomorrow: "tomorrow",
	ScreenNextDays: "next_days",
	ScreenHourly:   "hourly",
}

func (k ScreenKind) String() string {
	if name, ok := screenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k ScreenKind) MarshalText() ([]byte, error) {
	if _, ok := screenKindNames[k]; !ok {
		return nil, fmt.Errorf("unknown screen kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ScreenKind) UnmarshalText(text []byte) error {
	parsed, err := ParseScreenKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseScreenKind accepts the text form of a kind ("today", "next_days", ...)
// as well as its title ("Next Days").
func ParseScreenKind(s string) (ScreenKind, error) {
	key := common.NormalizeKey(s)
	for kind, name := range screenKindNames {
		if name == key {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown screen kind %q", s)
}

// Screen is a tagged value: Day is only meaningful for ScreenNextDays and
// Hour only for ScreenHourly.
type Screen struct {
	Kind ScreenKind `json:"kind"`
	Day  string     `json:"day,omitempty"`
	Hour string     `json:"hour,omitempty"`
}

func Today() Screen    { return Screen{Kind: ScreenToday} }
func Tomorrow() Screen { return Screen{Kind: ScreenTomorrow} }

func NextDays(day string) Screen {
	return Screen{Kind: ScreenNextDays, Day: day}
}

func Hourly(hour string) Screen {
	return Screen{Kind: ScreenHourly, Hour: hour}
}

// Position is the tab index of the screen, or -1 for screens that are not tabbed.
func (s Screen) Position() int {
	switch s.Kind {
	case ScreenToday:
		return 0
	case ScreenTomorrow:
		return 1
	case ScreenNextDays:
		return 2
	default:
		return -1
	}
}

func (s Screen) Title() string {
	switch s.Kind {
	case ScreenToday:
		return "Today"
	case ScreenTomorrow:
		return "Tomorrow"
	case ScreenNextDays:
		return "Next Days"
	case ScreenHourly:
		return "Hourly"
	default:
		return ""
	}
}

// Selectable reports whether the screen can be chosen as a top-level tab.
func (s Screen) Selectable() bool {
	return s.Position() >= 0
}

// Equal compares two screens. NextDays screens are identified by their day and
// Hourly screens by their hour; the unused payload fields are ignored.
func (s Screen) Equal(other Screen) bool {
	if s.Kind != other.Kind {
		return false
	}
	switch s.Kind {
	case ScreenNextDays:
		return s.Day == other.Day
	case ScreenHourly:
		return s.Hour == other.Hour
	default:
		return true
	}
}

// Label is the human name of the screen: the day for NextDays, the hour for
// Hourly and the title otherwise.
func (s Screen) Label() string {
	switch s.Kind {
	case ScreenNextDays:
		return s.Day
	case ScreenHourly:
		return s.Hour
	default:
		return s.Title()
	}
}

func (s Screen) String() string {
	switch s.Kind {
	case ScreenNextDays:
		return s.Kind.String() + "(" + s.Day + ")"
	case ScreenHourly:
		return s.Kind.String() + "(" + s.Hour + ")"
	default:
		return s.Kind.String()
	}
}
