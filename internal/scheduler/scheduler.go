package scheduler

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Ticker receives monotonically increasing clock readings.
type Ticker interface {
	Tick(now time.Duration)
}

// FrameClock periodically feeds the elapsed time since Start to a Ticker.
type FrameClock struct {
	scheduler *gocron.Scheduler
	target    Ticker
	interval  time.Duration

	mu      sync.Mutex
	started time.Time
	running bool
}

// New creates a new FrameClock. A non-positive interval falls back to 16ms.
// Intervals under a millisecond are rejected by Start.
func New(interval time.Duration, target Ticker) *FrameClock {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &FrameClock{
		scheduler: s,
		target:    target,
		interval:  interval,
	}
}

// Start schedules the frame job and starts the underlying scheduler.
func (c *FrameClock) Start() error {
	if c.target == nil {
		return errors.New("frame clock: no target configured")
	}

	millis := int(c.interval.Milliseconds())

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return errors.New("frame clock: already running")
	}
	c.started = time.Now()
	c.running = true
	c.mu.Unlock()

	_, err := c.scheduler.Every(millis).Milliseconds().Do(func() {
		c.target.Tick(c.Elapsed())
	})
	if err != nil {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
		return fmt.Errorf("frame clock: schedule every %dms: %w", millis, err)
	}

	log.Printf("INFO: frame clock: ticking every %dms", millis)
	c.scheduler.StartAsync()
	return nil
}

// Elapsed is the time since Start, measured on the monotonic clock.
func (c *FrameClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return 0
	}
	return time.Since(c.started)
}

// Stop stops the scheduler and cancels any future ticks.
func (c *FrameClock) Stop() {
	if c.scheduler != nil {
		c.scheduler.Stop()
	}
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()
}
