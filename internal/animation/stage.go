package animation

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-schedule-view/internal/weather"
)

// Stage holds the animators of every descriptor currently on display.
// Unmounting is synchronous: once Unmount returns, Frames never includes the
// removed animator again.
type Stage struct {
	mu        sync.Mutex
	animators []*Animator
}

func NewStage() *Stage {
	return &Stage{}
}

// Mount starts a fresh animator for d at clock reading now.
func (s *Stage) Mount(key string, d weather.Descriptor, now time.Duration) uuid.UUID {
	a := NewAnimator(key, d, now)

	s.mu.Lock()
	s.animators = append(s.animators, a)
	s.mu.Unlock()

	return a.ID()
}

// Unmount tears down one animator. It reports whether the id was mounted.
func (s *Stage) Unmount(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.animators {
		if a.ID() == id {
			s.animators = append(s.animators[:i:i], s.animators[i+1:]...)
			return true
		}
	}
	return false
}

// UnmountAll tears down every animator.
func (s *Stage) UnmountAll() {
	s.mu.Lock()
	s.animators = nil
	s.mu.Unlock()
}

// Keys returns the keys of the mounted animators in mount order.
func (s *Stage) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, len(s.animators))
	for i, a := range s.animators {
		keys[i] = a.Key()
	}
	return keys
}

// Frames samples every mounted animator in mount order.
func (s *Stage) Frames(now time.Duration) []Frame {
	s.mu.Lock()
	animators := make([]*Animator, len(s.animators))
	copy(animators, s.animators)
	s.mu.Unlock()

	frames := make([]Frame, len(animators))
	for i, a := range animators {
		frames[i] = a.Frame(now)
	}
	return frames
}
