package store

import (
	"errors"
	"fmt"

	"github.com/i474232898/weather-schedule-view/internal/weather"
)

var (
	// ErrNotFound is returned when no schedule entry matches a screen.
	ErrNotFound = errors.New("no scheduled weather for screen")
)

// DefaultCity is the location every built-in entry describes.
const DefaultCity = "Bogotá D.C."

// hourlySlots are the parts of day attached to Today and Tomorrow.
var hourlySlots = []string{"13:00", "14:00", "15:00", "16:00"}

type forecast struct {
	descriptor weather.DescriptorKind
	current    string
	low        string
	high       string
	wind       string
}

type scheduleRow struct {
	screen   weather.Screen
	forecast forecast
	hourly   bool
}

var defaultSchedule = []scheduleRow{
	{screen: weather.Today(), hourly: true, forecast: forecast{weather.DescriptorSunny, "21°", "16°", "22°", "7.5 km/h"}},
	{screen: weather.Tomorrow(), hourly: true, forecast: forecast{weather.DescriptorStormy, "18°", "9°", "19°", "11.3 km/h"}},
	{screen: weather.NextDays("Wednesday"), forecast: forecast{weather.DescriptorSnowy, "-1°", "-3°", "0°", "40.3 km/h"}},
	{screen: weather.NextDays("Thursday"), forecast: forecast{weather.DescriptorSunny, "23°", "17°", "23°", "5.5 km/h"}},
	{screen: weather.NextDays("Friday"), forecast: forecast{weather.DescriptorRainbowy, "17°", "12°", "18°", "15.5 km/h"}},
	{screen: weather.NextDays("Saturday"), forecast: forecast{weather.DescriptorStormy, "11°", "8°", "17°", "11.3 km/h"}},
	{screen: weather.NextDays("Sunday"), forecast: forecast{weather.DescriptorSunny, "18°", "11°", "19°", "21.3 km/h"}},
	{screen: weather.NextDays("Monday"), forecast: forecast{weather.DescriptorRainy, "11°", "9°", "17°", "25.3 km/h"}},
}

// ScheduleStore is the immutable, in-memory weather schedule. Every read
// builds fresh values, so callers may keep or modify what they receive.
type ScheduleStore struct {
	rows []scheduleRow
	city string
}

// NewScheduleStore returns the built-in schedule.
func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{
		rows: defaultSchedule,
		city: DefaultCity,
	}
}

// All returns every entry in table order with geometry for the given scale.
func (s *ScheduleStore) All(scale weather.ScalePreset) []weather.ScheduledWeather {
	cfg := scale.Config()
	result := make([]weather.ScheduledWeather, 0, len(s.rows))
	for _, row := range s.rows {
		result = append(result, s.build(row, cfg))
	}
	return result
}

// FindByScreen returns the entry whose screen equals screen.
func (s *ScheduleStore) FindByScreen(scale weather.ScalePreset, screen weather.Screen) (weather.ScheduledWeather, error) {
	cfg := scale.Config()
	for _, row := range s.rows {
		if row.screen.Equal(screen) {
			return s.build(row, cfg), nil
		}
	}
	return weather.ScheduledWeather{}, fmt.Errorf("%w: %s", ErrNotFound, screen)
}

// FilterNextDays returns the NextDays entries in table order.
func (s *ScheduleStore) FilterNextDays(scale weather.ScalePreset) []weather.ScheduledWeather {
	cfg := scale.Config()
	var result []weather.ScheduledWeather
	for _, row := range s.rows {
		if row.screen.Kind == weather.ScreenNextDays {
			result = append(result, s.build(row, cfg))
		}
	}
	return result
}

// Hourly returns the parts of day of the entry matching screen. Entries
// without an hourly breakdown yield an empty slice.
func (s *ScheduleStore) Hourly(scale weather.ScalePreset, screen weather.Screen) ([]weather.ScheduledWeather, error) {
	entry, err := s.FindByScreen(scale, screen)
	if err != nil {
		return nil, err
	}
	return entry.PartsOfDay, nil
}

func (s *ScheduleStore) build(row scheduleRow, cfg weather.PathScale) weather.ScheduledWeather {
	entry := weather.ScheduledWeather{
		Screen:  row.screen,
		Weather: s.weatherFor(row.forecast, cfg),
	}
	if row.hourly {
		entry.PartsOfDay = make([]weather.ScheduledWeather, 0, len(hourlySlots))
		for _, hour := range hourlySlots {
			entry.PartsOfDay = append(entry.PartsOfDay, weather.ScheduledWeather{
				Screen:  weather.Hourly(hour),
				Weather: s.weatherFor(row.forecast, cfg),
			})
		}
	}
	return entry
}

func (s *ScheduleStore) weatherFor(f forecast, cfg weather.PathScale) weather.Weather {
	return weather.Weather{
		Descriptor: weather.NewDescriptor(f.descriptor, cfg),
		Location:   weather.Location{City: s.city},
		Temperature: weather.Temperature{
			Current: f.current,
			Low:     f.low,
			High:    f.high,
		},
		Color: weather.ColorDarkGray,
		Wind:  f.wind,
	}
}
