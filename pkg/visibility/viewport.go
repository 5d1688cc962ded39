package visibility

import (
	"sync"

	"github.com/ansfaiz/NeuralForge/pkg/page"
)

// Observation tunes when an observed element counts as intersecting.
type Observation struct {
	// Threshold is the fraction of the element that must be inside the
	// (margin-adjusted) viewport before the observation fires.
	Threshold float64
	// RootMarginBottom shifts the viewport's bottom edge by a signed pixel
	// amount. A negative value delays the trigger until the element has
	// scrolled that much further into view.
	RootMarginBottom float64
}

// Observer is the intersection source an Animator subscribes to. The
// callback fires on every transition into the intersecting state; one-shot
// semantics belong to the subscriber, which unobserves after its first
// firing.
type Observer interface {
	Observe(el *page.Element, obs Observation, fn func())
	Unobserve(el *page.Element)
}

type watch struct {
	el           *page.Element
	obs          Observation
	fn           func()
	intersecting bool
}

// Viewport simulates the visible scrolling region over a document: it tracks
// a scroll offset, computes intersection ratios for observed elements, and
// notifies scroll listeners. It is the stand-in for the browser's
// intersection and scroll machinery, which makes every scroll-driven
// behavior testable without a live document.
type Viewport struct {
	mu       sync.Mutex
	height   float64
	scrollY  float64
	watches  []*watch
	onScroll []func(offset float64)
}

// NewViewport constructs a viewport of the given height scrolled to the top.
func NewViewport(height float64) *Viewport {
	return &Viewport{height: height}
}

// Observe starts watching an element. Observing a nil element is a no-op.
// The current scroll position is evaluated immediately, mirroring how
// intersection observers report the initial state on registration.
func (v *Viewport) Observe(el *page.Element, obs Observation, fn func()) {
	if v == nil || el == nil || fn == nil {
		return
	}
	v.mu.Lock()
	v.watches = append(v.watches, &watch{el: el, obs: obs, fn: fn})
	fns := v.evaluateLocked()
	v.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

// Unobserve stops watching an element.
func (v *Viewport) Unobserve(el *page.Element) {
	if v == nil || el == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	kept := v.watches[:0]
	for _, w := range v.watches {
		if w.el != el {
			kept = append(kept, w)
		}
	}
	v.watches = kept
}

// OnScroll registers a listener invoked with the new offset after every
// scroll, before intersection callbacks run.
func (v *Viewport) OnScroll(fn func(offset float64)) {
	if v == nil || fn == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onScroll = append(v.onScroll, fn)
}

// ScrollY reports the current scroll offset.
func (v *Viewport) ScrollY() float64 {
	if v == nil {
		return 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrollY
}

// Scroll moves the viewport to the given offset and dispatches scroll
// listeners followed by intersection transitions. Callbacks run on the
// caller's goroutine after internal state is settled, so observers may
// unobserve from within their callback.
func (v *Viewport) Scroll(offset float64) {
	if v == nil {
		return
	}
	if offset < 0 {
		offset = 0
	}
	v.mu.Lock()
	v.scrollY = offset
	listeners := make([]func(float64), len(v.onScroll))
	copy(listeners, v.onScroll)
	fns := v.evaluateLocked()
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(offset)
	}
	for _, fn := range fns {
		fn()
	}
}

// ScrollTo scrolls the viewport so the element's top edge sits at the top of
// the visible region, the smooth-scroll anchor target position.
func (v *Viewport) ScrollTo(el *page.Element) {
	if el == nil {
		return
	}
	v.Scroll(el.RectValue().Top)
}

// evaluateLocked recomputes intersection for every watch and returns the
// callbacks for watches that just transitioned into the intersecting state.
func (v *Viewport) evaluateLocked() []func() {
	var fire []func()
	for _, w := range v.watches {
		ratio := v.ratioLocked(w.el.RectValue(), w.obs.RootMarginBottom)
		now := meetsThreshold(ratio, w.obs.Threshold)
		if now && !w.intersecting {
			fire = append(fire, w.fn)
		}
		w.intersecting = now
	}
	return fire
}

// ratioLocked computes the fraction of the element's box inside the
// margin-adjusted viewport.
func (v *Viewport) ratioLocked(rect page.Rect, marginBottom float64) float64 {
	viewTop := v.scrollY
	viewBottom := v.scrollY + v.height + marginBottom
	if viewBottom <= viewTop {
		return 0
	}

	top := rect.Top
	bottom := rect.Bottom()
	if rect.Height <= 0 {
		// Zero-height boxes intersect when their edge is inside the region.
		if top >= viewTop && top <= viewBottom {
			return 1
		}
		return 0
	}

	overlapTop := top
	if viewTop > overlapTop {
		overlapTop = viewTop
	}
	overlapBottom := bottom
	if viewBottom < overlapBottom {
		overlapBottom = viewBottom
	}
	if overlapBottom <= overlapTop {
		return 0
	}
	return (overlapBottom - overlapTop) / rect.Height
}

func meetsThreshold(ratio, threshold float64) bool {
	if ratio <= 0 {
		return false
	}
	return ratio >= threshold
}
