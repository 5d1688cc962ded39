package forms

import (
	"context"

	"github.com/ansfaiz/NeuralForge/pkg/page"
)

// Submit runs the submission flow: validate everything, and on success park
// the form in a pending state for the configured delay before swapping it
// for the success panel. The browser-default submission is never performed;
// this path is a local simulation with no network side effects.
//
// It returns false when validation fails (errors stay visible and nothing
// else changes) or when ctx is cancelled during the pending delay.
func (v *Validator) Submit(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	if !v.ValidateForm() {
		return false
	}

	button := v.doc.ByID(page.IDSubmitButton)
	restoreLabel := button.Text()
	button.SetDisabled(true)
	button.SetText(v.pendingLabel)

	select {
	case <-ctx.Done():
		button.SetText(restoreLabel)
		button.SetDisabled(false)
		return false
	case <-v.clock.After(v.delay):
	}

	v.doc.ByID(page.IDContactForm).Hide()
	success := v.doc.ByID(page.IDFormSuccess)
	success.Show()
	success.AddClass(page.ClassVisible)
	return true
}
