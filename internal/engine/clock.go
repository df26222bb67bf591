package engine

import (
	"sync"
	"time"
)

// Clock is the frame driver's time source.
type Clock interface {
	// Now returns the current time. Readings must be monotonic.
	Now() time.Time
	// Sleep pauses for d. Used only for frame pacing.
	Sleep(d time.Duration)
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

// NewSystemClock creates a clock backed by time.Now.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// MockClock provides a controllable time source for testing.
// Sleep advances the mock time instead of blocking.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	slept       time.Duration
}

// NewMockClock creates a mock clock starting at start.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{currentTime: start}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Set sets the current time for the mock
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Sleep advances the mock time by d and records it.
func (m *MockClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.slept += d
}

// Slept returns the total duration passed to Sleep.
func (m *MockClock) Slept() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept
}
