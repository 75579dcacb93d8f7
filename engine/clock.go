package engine

import (
	"sync"
	"time"
)

// TimeProvider abstracts the clock so ticks can run against synthetic time
// in tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real system clock, monotonic reading
// included, so frame deltas survive wall-clock adjustments
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider returns the real-time clock source
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a hand-cranked clock for tests: time stands still
// until the test advances it, making key-hold expiry deterministic
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockTimeProvider starts a mock clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}
