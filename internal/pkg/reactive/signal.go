package reactive

import "sync"

// Source is anything an Effect can subscribe to.
type Source interface {
	// Subscribe returns a channel that receives a token after every change,
	// and a function that cancels the subscription.
	Subscribe() (<-chan struct{}, func())
}

// Signal is a mutable cell with replace-whole-value semantics.
// Every Set bumps the version, so two Sets of an equal value are still two changes.
type Signal[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64
	subs    map[uint64]chan struct{}
	nextSub uint64
}

// NewSignal creates a signal holding initial at version 0.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		value: initial,
		subs:  make(map[uint64]chan struct{}),
	}
}

// Load returns the latest value.
func (s *Signal[T]) Load() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Snapshot returns the latest value together with its version.
func (s *Signal[T]) Snapshot() (T, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.version
}

// Version returns the number of Sets performed so far.
func (s *Signal[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Set replaces the value and notifies every subscriber.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.version++
	subs := make([]chan struct{}, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		// Notifications coalesce: a pending token already means "something changed".
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe implements Source.
func (s *Signal[T]) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}
