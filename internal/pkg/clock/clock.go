package clock

import (
	"sync"
	"time"
)

// Clock abstracts the current time so stores can stamp rows deterministically in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the wall clock in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock is a controllable clock for tests. It is safe for concurrent use.
type FakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewFake creates a FakeClock set to t.
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// NewTicking creates a FakeClock that advances by step after every Now call,
// so consecutive writes get strictly increasing timestamps.
func NewTicking(t time.Time, step time.Duration) *FakeClock {
	return &FakeClock{now: t, step: step}
}

func (f *FakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.now
	f.now = f.now.Add(f.step)
	return now
}

func (f *FakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}
