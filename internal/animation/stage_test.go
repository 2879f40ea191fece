package animation

import (
	"math"
	"testing"
	"time"

	"github.com/i474232898/weather-schedule-view/internal/weather"
)

func TestAnimatorAssignsAlphaByMainPath(t *testing.T) {
	d := descriptor(weather.DescriptorRainy)
	a := NewAnimator("monday", d, 0)

	// mid-flicker, before the pulse starts
	frame := a.Frame(20 * time.Millisecond)
	for _, s := range frame.Shapes {
		want := frame.Progress.Secondary
		if s.Name == weather.PathCloud {
			want = frame.Progress.Primary
		}
		if s.Alpha != want {
			t.Errorf("shape %s: alpha %v, want %v", s.Name, s.Alpha, want)
		}
	}
	if frame.Progress.Secondary == 0 {
		t.Error("expected flicker to be running at 20ms")
	}
}

func TestAnimatorRotatesAboutMainCentre(t *testing.T) {
	d := descriptor(weather.DescriptorSunny)
	main, _ := d.Main()
	a := NewAnimator("today", d, time.Second)

	frame := a.Frame(time.Second + RotationPeriod/4)
	for _, s := range frame.Shapes {
		if math.Abs(s.Rotation-90) > 1e-9 {
			t.Errorf("shape %s: rotation %v, want 90", s.Name, s.Rotation)
		}
		if s.Pivot != main.Bounds.Center() {
			t.Errorf("shape %s: pivot %+v", s.Name, s.Pivot)
		}
	}
	if frame.Elapsed != RotationPeriod/4 {
		t.Errorf("elapsed %v, want %v", frame.Elapsed, RotationPeriod/4)
	}
}

func TestAnimatorClampsReadingsBeforeMount(t *testing.T) {
	a := NewAnimator("today", descriptor(weather.DescriptorSunny), time.Second)
	if frame := a.Frame(0); frame.Elapsed != 0 {
		t.Errorf("expected elapsed 0, got %v", frame.Elapsed)
	}
}

func TestStageMountAndUnmount(t *testing.T) {
	s := NewStage()

	first := s.Mount("wednesday", descriptor(weather.DescriptorSnowy), 0)
	s.Mount("thursday", descriptor(weather.DescriptorSunny), 0)

	frames := s.Frames(100 * time.Millisecond)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Key != "wednesday" || frames[1].Key != "thursday" {
		t.Errorf("unexpected order: %v", s.Keys())
	}

	if !s.Unmount(first) {
		t.Fatal("expected unmount to find the animator")
	}
	if s.Unmount(first) {
		t.Error("expected second unmount to report false")
	}

	frames = s.Frames(200 * time.Millisecond)
	if len(frames) != 1 || frames[0].Key != "thursday" {
		t.Errorf("unexpected frames after unmount: %v", s.Keys())
	}

	s.UnmountAll()
	if len(s.Frames(time.Second)) != 0 {
		t.Error("expected no frames after UnmountAll")
	}
}

func TestRemountRestartsTimelines(t *testing.T) {
	s := NewStage()
	d := descriptor(weather.DescriptorRainbowy)

	id := s.Mount("friday", d, 0)
	before := s.Frames(PrimaryLeg)[0]
	if math.Abs(before.Progress.Primary-PrimaryTarget) > 1e-9 {
		t.Fatalf("expected peak before remount, got %v", before.Progress.Primary)
	}

	s.Unmount(id)
	s.Mount("friday", d, PrimaryLeg)

	after := s.Frames(PrimaryLeg)[0]
	if after.Progress.Primary != 0 || after.Elapsed != 0 {
		t.Errorf("expected restart from 0, got %v after %v", after.Progress.Primary, after.Elapsed)
	}
}
