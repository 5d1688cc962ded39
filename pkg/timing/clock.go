// Package timing abstracts the time source that drives frame-based animation
// and the simulated submission delay. Components take a Clock instead of
// calling the time package directly so tests can replay timelines without
// real waits.
package timing

import "time"

// Ticker delivers a stream of frame instants until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock is the injectable time source. The real implementation wraps the
// time package; pkg/testsupport ships a manual clock for tests.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
	After(d time.Duration) <-chan time.Time
}

// FrameInterval approximates one rendering frame at 60fps. Animation loops
// re-sample on every tick until their progress clamps at 1.
const FrameInterval = time.Second / 60

type realClock struct{}

// NewClock returns a Clock backed by the time package.
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(d)}
}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

type realTicker struct {
	ticker *time.Ticker
}

func (t *realTicker) C() <-chan time.Time { return t.ticker.C }
func (t *realTicker) Stop()               { t.ticker.Stop() }
