package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/i474232898/weather-schedule-view/internal/weather"
)

func TestAllReturnsTableInOrder(t *testing.T) {
	s := NewScheduleStore()

	all := s.All(weather.ScaleLarge)
	if len(all) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(all))
	}

	want := []weather.Screen{
		weather.Today(),
		weather.Tomorrow(),
		weather.NextDays("Wednesday"),
		weather.NextDays("Thursday"),
		weather.NextDays("Friday"),
		weather.NextDays("Saturday"),
		weather.NextDays("Sunday"),
		weather.NextDays("Monday"),
	}
	for i, entry := range all {
		if !entry.Screen.Equal(want[i]) {
			t.Errorf("entry %d: got screen %s, want %s", i, entry.Screen, want[i])
		}
		if entry.Weather.Location.City != DefaultCity {
			t.Errorf("entry %d: got city %q, want %q", i, entry.Weather.Location.City, DefaultCity)
		}
	}
}

func TestAllIsDeterministic(t *testing.T) {
	s := NewScheduleStore()

	if !reflect.DeepEqual(s.All(weather.ScaleSmall), s.All(weather.ScaleSmall)) {
		t.Fatal("expected two listings at the same scale to be equal")
	}
}

func TestScaleOnlyAffectsGeometry(t *testing.T) {
	s := NewScheduleStore()

	large := s.All(weather.ScaleLarge)
	small := s.All(weather.ScaleSmall)

	for i := range large {
		lw, sw := large[i].Weather, small[i].Weather
		if lw.Temperature != sw.Temperature || lw.Wind != sw.Wind || lw.Location != sw.Location || lw.Color != sw.Color {
			t.Errorf("entry %d: weather values differ between scales", i)
		}
		if lw.Descriptor.Kind != sw.Descriptor.Kind {
			t.Errorf("entry %d: descriptor kind differs between scales", i)
		}
		if reflect.DeepEqual(lw.Descriptor.Paths, sw.Descriptor.Paths) {
			t.Errorf("entry %d: expected geometry to differ between scales", i)
		}
	}
}

func TestFindByScreen(t *testing.T) {
	s := NewScheduleStore()

	tests := []struct {
		name       string
		screen     weather.Screen
		descriptor weather.DescriptorKind
	}{
		{"today", weather.Today(), weather.DescriptorSunny},
		{"tomorrow", weather.Tomorrow(), weather.DescriptorStormy},
		{"friday", weather.NextDays("Friday"), weather.DescriptorRainbowy},
		{"monday", weather.NextDays("Monday"), weather.DescriptorRainy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := s.FindByScreen(weather.ScaleLarge, tt.screen)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !entry.Screen.Equal(tt.screen) {
				t.Errorf("got screen %s, want %s", entry.Screen, tt.screen)
			}
			if entry.Weather.Descriptor.Kind != tt.descriptor {
				t.Errorf("got descriptor %s, want %s", entry.Weather.Descriptor.Kind, tt.descriptor)
			}
		})
	}
}

func TestFindByScreenNotFound(t *testing.T) {
	s := NewScheduleStore()

	for _, screen := range []weather.Screen{weather.NextDays("Funday"), weather.Hourly("13:00")} {
		_, err := s.FindByScreen(weather.ScaleLarge, screen)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("FindByScreen(%s): expected ErrNotFound, got %v", screen, err)
		}
	}
}

func TestFilterNextDays(t *testing.T) {
	s := NewScheduleStore()

	days := s.FilterNextDays(weather.ScaleSmall)
	want := []string{"Wednesday", "Thursday", "Friday", "Saturday", "Sunday", "Monday"}
	if len(days) != len(want) {
		t.Fatalf("expected %d next days, got %d", len(want), len(days))
	}
	for i, entry := range days {
		if entry.Screen.Kind != weather.ScreenNextDays || entry.Screen.Day != want[i] {
			t.Errorf("entry %d: got %s, want next_days(%s)", i, entry.Screen, want[i])
		}
		if len(entry.PartsOfDay) != 0 {
			t.Errorf("entry %d: expected no parts of day", i)
		}
	}
}

func TestHourly(t *testing.T) {
	s := NewScheduleStore()

	parts, err := s.Hourly(weather.ScaleLarge, weather.Tomorrow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 4 {
		t.Fatalf("expected 4 hourly parts, got %d", len(parts))
	}
	if !parts[0].Screen.Equal(weather.Hourly("13:00")) || !parts[3].Screen.Equal(weather.Hourly("16:00")) {
		t.Errorf("unexpected hourly screens: %s .. %s", parts[0].Screen, parts[3].Screen)
	}
	if parts[0].Weather.Descriptor.Kind != weather.DescriptorStormy {
		t.Errorf("expected hourly parts to repeat the day's weather, got %s", parts[0].Weather.Descriptor.Kind)
	}

	parts, err = s.Hourly(weather.ScaleLarge, weather.NextDays("Sunday"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 0 {
		t.Errorf("expected no hourly parts for a next day, got %d", len(parts))
	}
}
