package viewstate

import (
	"encoding/json"
	"reflect"

	"github.com/i474232898/weather-schedule-view/internal/weather"
)

// DataKind tags the variant held by ScreenData.
type DataKind int

const (
	DataNone DataKind = iota
	DataSingle
	DataMultiple
)

func (k DataKind) String() string {
	switch k {
	case DataSingle:
		return "single"
	case DataMultiple:
		return "multiple"
	default:
		return "none"
	}
}

// ScreenData is what the selected screen displays: nothing, one day or many.
type ScreenData struct {
	kind     DataKind
	single   weather.ScheduledWeather
	multiple []weather.ScheduledWeather
}

func NoData() ScreenData { return ScreenData{} }

func Single(entry weather.ScheduledWeather) ScreenData {
	return ScreenData{kind: DataSingle, single: entry}
}

func Multiple(entries []weather.ScheduledWeather) ScreenData {
	return ScreenData{kind: DataMultiple, multiple: entries}
}

func (d ScreenData) Kind() DataKind { return d.kind }

// Single returns the entry of a single-day view.
func (d ScreenData) Single() (weather.ScheduledWeather, bool) {
	return d.single, d.kind == DataSingle
}

// Multiple returns the entries of a multi-day view.
func (d ScreenData) Multiple() ([]weather.ScheduledWeather, bool) {
	return d.multiple, d.kind == DataMultiple
}

// Entries flattens the data into the list of visible entries.
func (d ScreenData) Entries() []weather.ScheduledWeather {
	switch d.kind {
	case DataSingle:
		return []weather.ScheduledWeather{d.single}
	case DataMultiple:
		return d.multiple
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (d ScreenData) MarshalJSON() ([]byte, error) {
	out := struct {
		Type    string                     `json:"type"`
		Entry   *weather.ScheduledWeather  `json:"entry,omitempty"`
		Entries []weather.ScheduledWeather `json:"entries,omitempty"`
	}{Type: d.kind.String()}

	switch d.kind {
	case DataSingle:
		out.Entry = &d.single
	case DataMultiple:
		out.Entries = d.multiple
	}
	return json.Marshal(out)
}

// NoCitySelected is the city label before any screen data is published.
const NoCitySelected = "No City Selected"

// ViewState is an immutable snapshot of what the UI shows.
type ViewState struct {
	Selected weather.Screen      `json:"selected"`
	Data     ScreenData          `json:"data"`
	City     string              `json:"city"`
	Tabs     []weather.Screen    `json:"tabs"`
	Scale    weather.ScalePreset `json:"scale"`
}

// Empty is the state before the controller has selected a screen.
func Empty() ViewState {
	return ViewState{
		Selected: weather.Today(),
		City:     NoCitySelected,
	}
}

// Equal reports whether two states would render identically.
func (v ViewState) Equal(other ViewState) bool {
	return reflect.DeepEqual(v, other)
}
