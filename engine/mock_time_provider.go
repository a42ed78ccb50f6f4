package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a Clock that only moves when told to
type MockTimeProvider struct {
	now atomic.Pointer[time.Time]
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.now.Store(&start)
	return m
}

func (m *MockTimeProvider) Now() time.Time {
	return *m.now.Load()
}

func (m *MockTimeProvider) SetTime(t time.Time) {
	m.now.Store(&t)
}

// Advance moves the clock by d; concurrent advances all apply
func (m *MockTimeProvider) Advance(d time.Duration) {
	for {
		cur := m.now.Load()
		next := cur.Add(d)
		if m.now.CompareAndSwap(cur, &next) {
			return
		}
	}
}
