package state

import (
	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/pkg/reactive"
)

// SDKState holds the currently published SDK, or nil before the first publish.
// Publishing replaces the whole value; readers always see the latest publish.
// Both the initializer and the signer synchronizer write through Publish.
type SDKState struct {
	signal *reactive.Signal[port.SDK]
}

// NewSDKState creates an empty state.
func NewSDKState() *SDKState {
	return &SDKState{signal: reactive.NewSignal[port.SDK](nil)}
}

// Current returns the published SDK or nil.
func (s *SDKState) Current() port.SDK {
	return s.signal.Load()
}

// Publish replaces the published SDK and notifies subscribers, even when sdk is
// the instance already held.
func (s *SDKState) Publish(sdk port.SDK) {
	s.signal.Set(sdk)
}

// Publishes returns how many times Publish has been called.
func (s *SDKState) Publishes() uint64 {
	return s.signal.Version()
}

// Subscribe implements reactive.Source.
func (s *SDKState) Subscribe() (<-chan struct{}, func()) {
	return s.signal.Subscribe()
}
