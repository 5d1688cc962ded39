package behaviors

import (
	"context"
	"testing"

	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/testsupport"
)

func newBoundPage(t *testing.T, options ...Option) *Binder {
	t.Helper()

	b, err := Bind(context.Background(), testsupport.LandingDocument(), options...)
	if err != nil {
		t.Fatalf("bind page: %v", err)
	}
	t.Cleanup(b.Close)
	return b
}

func TestBindWiresEverything(t *testing.T) {
	b := newBoundPage(t)

	if b.Theme() == nil || b.Menu() == nil || b.Animator() == nil || b.Viewport() == nil {
		t.Fatalf("expected all behaviors wired")
	}
	if b.Validator() == nil {
		t.Fatalf("document with a contact form should get a validator")
	}
	if len(b.Form().Fields) == 0 {
		t.Fatalf("default form model should be loaded")
	}
}

func TestBindWithoutContactForm(t *testing.T) {
	doc := page.NewDocument(900)
	doc.Add(
		page.NewElement("body", page.IDBody),
		page.NewElement("nav", page.IDNavbar),
	)

	b, err := Bind(context.Background(), doc)
	if err != nil {
		t.Fatalf("bind page: %v", err)
	}
	defer b.Close()

	if b.Validator() != nil {
		t.Fatalf("no contact form means no validator")
	}
}

func TestNavbarStylingFollowsScroll(t *testing.T) {
	b := newBoundPage(t)
	navbar := b.Document().ByID(page.IDNavbar)

	b.Scroll(51)
	if !navbar.HasClass(page.ClassScrolled) {
		t.Fatalf("offset past 50 should add the scrolled class")
	}

	b.Scroll(50)
	if navbar.HasClass(page.ClassScrolled) {
		t.Fatalf("offset at the threshold should remove the scrolled class")
	}
}

func TestParallaxTransform(t *testing.T) {
	b := newBoundPage(t)
	hero := b.Document().ByID(page.IDHero)

	b.Scroll(200)
	if got := hero.Style("transform"); got != "translateY(100px)" {
		t.Fatalf("parallax transform mismatch: %q", got)
	}
}

func TestScrollTriggersRevealAndCounters(t *testing.T) {
	b := newBoundPage(t)
	doc := b.Document()

	b.Scroll(900)
	if !doc.ByID("card-1").HasClass(page.ClassVisible) {
		t.Fatalf("first card should reveal once scrolled into view")
	}

	if !b.Animator().Triggered(doc.ByID("stat-projects")) {
		t.Fatalf("counters visible at bind time should have triggered")
	}
}

func TestClickAnchorScrollsAndClosesMenu(t *testing.T) {
	b := newBoundPage(t)
	doc := b.Document()

	b.Menu().Toggle()
	b.ClickAnchor("#contact-form")

	if b.Menu().Open() {
		t.Fatalf("anchor navigation should close the mobile menu")
	}
	if got := b.Viewport().ScrollY(); got != doc.ByID(page.IDContactForm).RectValue().Top {
		t.Fatalf("viewport should land on the target's top, got %v", got)
	}
}

func TestClickAnchorUnknownTarget(t *testing.T) {
	b := newBoundPage(t)

	b.Scroll(120)
	b.ClickAnchor("#missing-section")
	if got := b.Viewport().ScrollY(); got != 120 {
		t.Fatalf("unknown anchors must not scroll, got %v", got)
	}
}

func TestBindRequiresContext(t *testing.T) {
	if _, err := Bind(nil, testsupport.LandingDocument()); err == nil {
		t.Fatalf("nil context should fail")
	}
	if _, err := Bind(context.Background(), nil); err == nil {
		t.Fatalf("nil document should fail")
	}
}
