package viewstate

import (
	"sync"

	"github.com/google/uuid"
)

// Listener receives every published state.
type Listener func(ViewState)

type subscription struct {
	id uuid.UUID
	fn Listener
}

// Store is a single observable ViewState cell. Publish replaces the whole
// value and notifies listeners synchronously, in subscription order.
type Store struct {
	// publishMu orders whole publishes so listeners see writes in the order
	// they were stored.
	publishMu sync.Mutex

	mu    sync.RWMutex
	value ViewState
	subs  []subscription
}

// NewStore creates a store holding initial.
func NewStore(initial ViewState) *Store {
	return &Store{value: initial}
}

// Get returns the current state.
func (s *Store) Get() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Subscribe registers fn and returns an id for Unsubscribe.
func (s *Store) Subscribe(fn Listener) uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return id
}

// Unsubscribe removes a listener. Unknown ids are ignored.
func (s *Store) Unsubscribe(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// Publish stores v and calls every listener with it. Concurrent publishers
// run one after another, so the last value stored is also the last one every
// listener sees. Listeners must not publish.
func (s *Store) Publish(v ViewState) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	s.value = v
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(v)
	}
}
