package testsupport

import (
	"sync"
	"time"

	"github.com/ansfaiz/NeuralForge/pkg/timing"
)

// FakeClock is a manually advanced timing.Clock. Time only moves when the
// test calls Advance, which fires any due tickers and After waiters.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
	waiters []*fakeWaiter
}

// NewFakeClock starts the clock at a fixed instant so durations in assertions
// stay stable.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now reports the current fake instant.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// NewTicker returns a ticker that fires only via Advance. Ticks that pile up
// faster than the consumer reads are coalesced, like real frame timers.
func (c *FakeClock) NewTicker(d time.Duration) timing.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTicker{
		clock:    c,
		interval: d,
		next:     c.now.Add(d),
		ch:       make(chan time.Time, 1),
	}
	c.tickers = append(c.tickers, t)
	return t
}

// After returns a channel that receives once Advance moves past d.
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := &fakeWaiter{at: c.now.Add(d), ch: make(chan time.Time, 1)}
	if d <= 0 {
		w.ch <- c.now
		return w.ch
	}
	c.waiters = append(c.waiters, w)
	return w.ch
}

// Advance moves the clock forward and delivers every tick and waiter that
// became due.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)

	kept := c.waiters[:0]
	for _, w := range c.waiters {
		if w.at.After(c.now) {
			kept = append(kept, w)
			continue
		}
		w.ch <- w.at
	}
	c.waiters = kept

	for _, t := range c.tickers {
		if t.stopped {
			continue
		}
		var last time.Time
		due := false
		for !t.next.After(c.now) {
			last = t.next
			due = true
			t.next = t.next.Add(t.interval)
		}
		if !due {
			continue
		}
		// Coalesce to the newest due tick so a consumer that falls behind
		// still observes the latest frame time.
		select {
		case <-t.ch:
		default:
		}
		t.ch <- last
	}
}

// WaiterCount reports how many After calls are still pending.
func (c *FakeClock) WaiterCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

// BlockUntilWaiters spins until at least n After calls are pending. Tests use
// it to rendezvous with a goroutine that is about to block on the clock.
func (c *FakeClock) BlockUntilWaiters(n int) {
	for c.WaiterCount() < n {
		time.Sleep(time.Millisecond)
	}
}

// TickerCount reports how many live tickers exist.
func (c *FakeClock) TickerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.tickers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// BlockUntilTickers spins until at least n tickers are live, the rendezvous
// for goroutines that drive animation frames.
func (c *FakeClock) BlockUntilTickers(n int) {
	for c.TickerCount() < n {
		time.Sleep(time.Millisecond)
	}
}

type fakeWaiter struct {
	at time.Time
	ch chan time.Time
}

type fakeTicker struct {
	clock    *FakeClock
	interval time.Duration
	next     time.Time
	ch       chan time.Time
	stopped  bool
}

func (t *fakeTicker) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTicker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}
