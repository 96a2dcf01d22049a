package alert

import (
	"sync"
	"time"
)

// MockOutput is a test implementation of the Output interface that records
// every call.
type MockOutput struct {
	mu   sync.Mutex
	clip time.Duration
	err  error

	plays  int
	stops  int
	closes int
}

// NewMockOutput creates a mock whose clip reports the given duration.
func NewMockOutput(clip time.Duration) *MockOutput {
	return &MockOutput{clip: clip}
}

// SetError makes subsequent PlayOnce calls fail.
func (m *MockOutput) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// PlayOnce records the call and returns the configured error.
func (m *MockOutput) PlayOnce() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plays++
	return m.err
}

// StopAll records the call.
func (m *MockOutput) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops++
}

// ClipDuration returns the configured clip length.
func (m *MockOutput) ClipDuration() time.Duration {
	return m.clip
}

// Close records the call.
func (m *MockOutput) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closes++
	return nil
}

// Plays returns how many times PlayOnce was called.
func (m *MockOutput) Plays() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.plays
}

// Stops returns how many times StopAll was called.
func (m *MockOutput) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}

// Closes returns how many times Close was called.
func (m *MockOutput) Closes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closes
}
