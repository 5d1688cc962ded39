package visibility

import (
	"testing"

	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/testsupport"
	"github.com/ansfaiz/NeuralForge/pkg/timing"
)

func TestRevealFiresOnceOnly(t *testing.T) {
	vp := NewViewport(900)
	a := NewAnimator(vp)
	defer a.Stop()

	card := page.NewElement("div", "card")
	card.SetRect(page.Rect{Top: 2000, Height: 300})
	a.RegisterReveals([]*page.Element{card})

	vp.Scroll(1500)
	if !card.HasClass(page.ClassVisible) {
		t.Fatalf("expected visible class after entering the viewport")
	}
	if !a.Triggered(card) {
		t.Fatalf("expected animation to be recorded as triggered")
	}

	// Scroll away, remove the class, and come back: the animation must not
	// refire after its one shot.
	vp.Scroll(0)
	card.RemoveClass(page.ClassVisible)
	vp.Scroll(1500)
	if card.HasClass(page.ClassVisible) {
		t.Fatalf("one-shot reveal must not rerun on re-entry")
	}
}

func TestRevealAlreadyVisibleAtRegistration(t *testing.T) {
	vp := NewViewport(900)
	a := NewAnimator(vp)
	defer a.Stop()

	card := page.NewElement("div", "card")
	card.SetRect(page.Rect{Top: 100, Height: 300})
	a.RegisterReveals([]*page.Element{card})

	if !card.HasClass(page.ClassVisible) {
		t.Fatalf("element visible at registration should reveal immediately")
	}
}

func TestCounterAnimatesToTarget(t *testing.T) {
	vp := NewViewport(900)
	clock := testsupport.NewFakeClock()
	a := NewAnimator(vp, WithClock(clock))
	defer a.Stop()

	stat := page.NewElement("span", "stat")
	stat.SetAttr(page.AttrCounterTarget, "1500")
	stat.SetAttr(page.AttrCounterSuffix, "+")
	stat.SetRect(page.Rect{Top: 1200, Height: 60})
	a.RegisterCounters([]*page.Element{stat})

	vp.Scroll(800)
	if got := stat.Text(); got != "0+" {
		t.Fatalf("first frame should render 0+, got %q", got)
	}

	clock.BlockUntilTickers(1)
	clock.Advance(CounterDuration + timing.FrameInterval)
	a.Wait()

	if got := stat.Text(); got != "1500+" {
		t.Fatalf("final frame should render the exact target, got %q", got)
	}
}

func TestCounterMalformedTargetCountsToZero(t *testing.T) {
	vp := NewViewport(900)
	clock := testsupport.NewFakeClock()
	a := NewAnimator(vp, WithClock(clock))
	defer a.Stop()

	stat := page.NewElement("span", "stat")
	stat.SetAttr(page.AttrCounterTarget, "not-a-number")
	stat.SetAttr(page.AttrCounterSuffix, "%")
	stat.SetRect(page.Rect{Top: 400, Height: 60})
	a.RegisterCounters([]*page.Element{stat})

	clock.BlockUntilTickers(1)
	clock.Advance(CounterDuration + timing.FrameInterval)
	a.Wait()

	if got := stat.Text(); got != "0%" {
		t.Fatalf("malformed target should hold 0%%, got %q", got)
	}
}

func TestCounterIsOneShot(t *testing.T) {
	vp := NewViewport(900)
	clock := testsupport.NewFakeClock()
	a := NewAnimator(vp, WithClock(clock))
	defer a.Stop()

	stat := page.NewElement("span", "stat")
	stat.SetAttr(page.AttrCounterTarget, "98")
	stat.SetRect(page.Rect{Top: 1200, Height: 60})
	a.RegisterCounters([]*page.Element{stat})

	vp.Scroll(800)
	clock.BlockUntilTickers(1)
	clock.Advance(CounterDuration + timing.FrameInterval)
	a.Wait()

	stat.SetText("tampered")
	vp.Scroll(0)
	vp.Scroll(800)
	a.Wait()
	if got := stat.Text(); got != "tampered" {
		t.Fatalf("counter must not restart on re-entry, got %q", got)
	}
}

func TestStopHaltsInFlightCounters(t *testing.T) {
	vp := NewViewport(900)
	clock := testsupport.NewFakeClock()
	a := NewAnimator(vp, WithClock(clock))

	stat := page.NewElement("span", "stat")
	stat.SetAttr(page.AttrCounterTarget, "1500")
	stat.SetRect(page.Rect{Top: 400, Height: 60})
	a.RegisterCounters([]*page.Element{stat})

	clock.BlockUntilTickers(1)
	a.Stop()

	if got := stat.Text(); got != "0" {
		t.Fatalf("stopped counter holds its last rendered value, got %q", got)
	}
}
