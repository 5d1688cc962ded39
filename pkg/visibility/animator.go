// Package visibility implements the scroll-triggered animation layer: a
// one-shot animator over an intersection observer plus the viewport
// simulation that feeds it. Each registered element animates at most once
// per document lifetime and is unobserved as soon as it fires.
package visibility

import (
	"context"
	"sync"
	"time"

	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/timing"
)

// Design parameters for the two animation kinds. They are tuning, not a hard
// contract, but the rendered page depends on them for visual parity.
const (
	RevealThreshold        = 0.10
	RevealRootMarginBottom = -40.0
	CounterThreshold       = 0.50
	CounterDuration        = 1800 * time.Millisecond
)

// Option customises an Animator.
type Option func(*Animator)

// WithClock injects the frame clock driving counter animations.
func WithClock(clock timing.Clock) Option {
	return func(a *Animator) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithCounterDuration overrides the counter animation duration.
func WithCounterDuration(d time.Duration) Option {
	return func(a *Animator) {
		if d > 0 {
			a.duration = d
		}
	}
}

// Animator fires one-shot animations the first time observed elements become
// visible. Reveal elements get the terminal class marker; counters animate
// their displayed integer with a cubic ease-out over the configured
// duration.
type Animator struct {
	observer Observer
	clock    timing.Clock
	duration time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	triggered map[*page.Element]bool
}

// NewAnimator constructs an animator over the given intersection source.
func NewAnimator(observer Observer, options ...Option) *Animator {
	ctx, cancel := context.WithCancel(context.Background())
	a := &Animator{
		observer:  observer,
		clock:     timing.NewClock(),
		duration:  CounterDuration,
		ctx:       ctx,
		cancel:    cancel,
		triggered: make(map[*page.Element]bool),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// RegisterReveals observes elements for the plain reveal animation using the
// reveal tuning (10% visible, bottom margin -40px). Empty input is a no-op.
func (a *Animator) RegisterReveals(elements []*page.Element) {
	a.register(elements, Observation{
		Threshold:        RevealThreshold,
		RootMarginBottom: RevealRootMarginBottom,
	}, a.reveal)
}

// RegisterCounters observes elements for the counter animation using the
// counter tuning (50% visible). Empty input is a no-op.
func (a *Animator) RegisterCounters(elements []*page.Element) {
	a.register(elements, Observation{Threshold: CounterThreshold}, a.countUp)
}

func (a *Animator) register(elements []*page.Element, obs Observation, run func(*page.Element)) {
	if a.observer == nil {
		return
	}
	for _, el := range elements {
		if el == nil {
			continue
		}
		el := el
		a.observer.Observe(el, obs, func() {
			if !a.markTriggered(el) {
				return
			}
			a.observer.Unobserve(el)
			run(el)
		})
	}
}

// markTriggered flips the element's triggered flag and reports whether this
// call won the one-shot.
func (a *Animator) markTriggered(el *page.Element) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.triggered[el] {
		return false
	}
	a.triggered[el] = true
	return true
}

// Triggered reports whether the element's animation has fired.
func (a *Animator) Triggered(el *page.Element) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.triggered[el]
}

func (a *Animator) reveal(el *page.Element) {
	el.AddClass(page.ClassVisible)
}

// countUp starts the frame loop for a counter element. The target parses
// from data-target with the parse-or-zero policy, so malformed markup counts
// to zero instead of failing.
func (a *Animator) countUp(el *page.Element) {
	target := el.IntAttr(page.AttrCounterTarget)
	suffix := el.Attr(page.AttrCounterSuffix)

	el.SetText(FormatCount(target, 0, suffix))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.runCounter(el, target, suffix)
	}()
}

// runCounter re-samples the eased value on every frame tick until progress
// clamps at 1, then stops scheduling frames. The final frame always renders
// the exact target.
func (a *Animator) runCounter(el *page.Element, target int, suffix string) {
	start := a.clock.Now()
	ticker := a.clock.NewTicker(timing.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return
		case now := <-ticker.C():
			p := float64(now.Sub(start)) / float64(a.duration)
			el.SetText(FormatCount(target, p, suffix))
			if p >= 1 {
				return
			}
		}
	}
}

// Wait blocks until all in-flight counter animations finish.
func (a *Animator) Wait() {
	a.wg.Wait()
}

// Stop cancels in-flight counter animations and waits for their loops to
// exit. Registered observations stay in place; stopped counters simply hold
// their last rendered value.
func (a *Animator) Stop() {
	a.cancel()
	a.wg.Wait()
}
