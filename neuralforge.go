package neuralforge

import (
	"context"

	"github.com/ansfaiz/NeuralForge/pkg/behaviors"
	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/render"
)

// Binder wires every landing page behavior to a document; alias exported via
// the root package for convenience.
type Binder = behaviors.Binder

// Option configures Bind.
type Option = behaviors.Option

// Bind attaches theme toggling, navigation, scroll effects, reveal and
// counter animations, and contact form validation to the document. It is the
// simplest entry point for callers that just want the page live.
func Bind(ctx context.Context, doc *page.Document, options ...Option) (*Binder, error) {
	return behaviors.Bind(ctx, doc, options...)
}

// RenderHTML snapshots the bound document's current state as HTML.
func RenderHTML(ctx context.Context, binder *Binder, title string) ([]byte, error) {
	landing, err := render.NewLanding()
	if err != nil {
		return nil, err
	}
	snap := render.BuildSnapshot(binder.Document(), binder.Form(), title, binder.Theme().CSSVariables())
	return landing.Render(ctx, snap)
}
