package forms

import (
	"context"
	"testing"
	"time"

	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/testsupport"
)

func TestSubmitRejectsInvalidForm(t *testing.T) {
	v, doc := newBoundValidator(t)

	if v.Submit(context.Background()) {
		t.Fatalf("an empty form must not submit")
	}
	if doc.ByID(page.IDContactForm).Hidden() {
		t.Fatalf("a rejected submission leaves the form visible")
	}
	if !v.HasError("name") {
		t.Fatalf("rejected submission should surface validation errors")
	}
}

func TestSubmitPendingStateAndSuccess(t *testing.T) {
	clock := testsupport.NewFakeClock()
	v, doc := newBoundValidator(t, WithClock(clock))
	fillValid(v)

	done := make(chan bool, 1)
	go func() { done <- v.Submit(context.Background()) }()

	clock.BlockUntilWaiters(1)
	button := doc.ByID(page.IDSubmitButton)
	if !button.Disabled() {
		t.Fatalf("submit button should be disabled while pending")
	}
	if got := button.Text(); got != "Sending..." {
		t.Fatalf("pending label mismatch: %q", got)
	}

	clock.Advance(1200 * time.Millisecond)
	if ok := <-done; !ok {
		t.Fatalf("valid submission should succeed")
	}

	if !doc.ByID(page.IDContactForm).Hidden() {
		t.Fatalf("form should be hidden after success")
	}
	success := doc.ByID(page.IDFormSuccess)
	if success.Hidden() || !success.HasClass(page.ClassVisible) {
		t.Fatalf("success panel should be shown and marked visible")
	}
}

func TestSubmitCancelledRestoresButton(t *testing.T) {
	clock := testsupport.NewFakeClock()
	v, doc := newBoundValidator(t, WithClock(clock))
	fillValid(v)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan bool, 1)
	go func() { done <- v.Submit(ctx) }()

	clock.BlockUntilWaiters(1)
	cancel()
	if ok := <-done; ok {
		t.Fatalf("a cancelled submission must report failure")
	}

	button := doc.ByID(page.IDSubmitButton)
	if button.Disabled() {
		t.Fatalf("cancel should re-enable the submit button")
	}
	if got := button.Text(); got != "Send Message" {
		t.Fatalf("cancel should restore the original label, got %q", got)
	}
	if doc.ByID(page.IDContactForm).Hidden() {
		t.Fatalf("cancel must leave the form visible")
	}
}

func TestSubmitCustomDelayAndLabel(t *testing.T) {
	clock := testsupport.NewFakeClock()
	v, doc := newBoundValidator(t,
		WithClock(clock),
		WithSubmitDelay(300*time.Millisecond),
		WithPendingLabel("Hold on"),
	)
	fillValid(v)

	done := make(chan bool, 1)
	go func() { done <- v.Submit(context.Background()) }()

	clock.BlockUntilWaiters(1)
	if got := doc.ByID(page.IDSubmitButton).Text(); got != "Hold on" {
		t.Fatalf("custom pending label mismatch: %q", got)
	}

	clock.Advance(300 * time.Millisecond)
	if ok := <-done; !ok {
		t.Fatalf("submission should succeed after the custom delay")
	}
}
