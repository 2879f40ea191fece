package scheduler

import (
	"sync"
	"testing"
	"time"
)

type recordingTicker struct {
	mu    sync.Mutex
	ticks []time.Duration
	first chan struct{}
	once  sync.Once
}

func (r *recordingTicker) Tick(now time.Duration) {
	r.mu.Lock()
	r.ticks = append(r.ticks, now)
	r.mu.Unlock()
	r.once.Do(func() { close(r.first) })
}

func TestFrameClockTicks(t *testing.T) {
	target := &recordingTicker{first: make(chan struct{})}
	clock := New(10*time.Millisecond, target)

	if err := clock.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer clock.Stop()

	select {
	case <-target.first:
	case <-time.After(2 * time.Second):
		t.Fatal("frame clock never ticked")
	}

	if err := clock.Start(); err == nil {
		t.Error("expected error when starting twice")
	}
}

func TestFrameClockRequiresTarget(t *testing.T) {
	clock := New(time.Millisecond, nil)
	if err := clock.Start(); err == nil {
		t.Fatal("expected error without target")
	}
}

func TestElapsedBeforeStart(t *testing.T) {
	clock := New(time.Millisecond, &recordingTicker{first: make(chan struct{})})
	if got := clock.Elapsed(); got != 0 {
		t.Errorf("expected 0 before start, got %v", got)
	}
}

func TestFrameClockRetriesAfterFailedStart(t *testing.T) {
	target := &recordingTicker{first: make(chan struct{})}
	clock := New(500*time.Microsecond, target)

	if err := clock.Start(); err == nil {
		t.Fatal("expected error for sub-millisecond interval")
	}
	if got := clock.Elapsed(); got != 0 {
		t.Errorf("expected clock to stay stopped, elapsed %v", got)
	}

	clock.interval = 10 * time.Millisecond
	if err := clock.Start(); err != nil {
		t.Fatalf("expected retry to start, got %v", err)
	}
	defer clock.Stop()

	select {
	case <-target.first:
	case <-time.After(2 * time.Second):
		t.Fatal("frame clock never ticked after retry")
	}
}
