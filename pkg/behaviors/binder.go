// Package behaviors wires the landing page's interactive layer against a
// page.Document: theme switching, navbar styling, the mobile menu,
// smooth-scroll anchors, parallax, scroll-triggered animations, and the
// contact-form validator. The Binder is the composition root; each behavior
// degrades silently when its markup is absent.
package behaviors

import (
	"context"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/ansfaiz/NeuralForge/pkg/forms"
	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/prefs"
	"github.com/ansfaiz/NeuralForge/pkg/schema"
	"github.com/ansfaiz/NeuralForge/pkg/timing"
	"github.com/ansfaiz/NeuralForge/pkg/visibility"
)

// Option customises the Binder configuration.
type Option func(*Binder)

// WithClock injects the time source shared by the animator and validator.
func WithClock(clock timing.Clock) Option {
	return func(b *Binder) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// WithViewport injects a viewport; by default one is created from the
// document's configured height.
func WithViewport(vp *visibility.Viewport) Option {
	return func(b *Binder) {
		if vp != nil {
			b.viewport = vp
		}
	}
}

// WithPreferences injects the persisted preference store.
func WithPreferences(store *prefs.Store) Option {
	return func(b *Binder) {
		b.store = store
	}
}

// WithThemeSelector injects a go-theme selector resolving theme variants.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(b *Binder) {
		b.selector = selector
	}
}

// WithFormModel overrides the contact-form model. When omitted the model is
// built from the embedded contract.
func WithFormModel(form schema.FormModel) Option {
	return func(b *Binder) {
		b.form = form
		b.formSet = true
	}
}

// WithValidatorOptions forwards options to the form validator.
func WithValidatorOptions(options ...forms.Option) Option {
	return func(b *Binder) {
		b.validatorOpts = append(b.validatorOpts, options...)
	}
}

// Binder owns the wired behavior set for one document.
type Binder struct {
	doc      *page.Document
	clock    timing.Clock
	viewport *visibility.Viewport
	store    *prefs.Store
	selector theme.ThemeSelector

	form          schema.FormModel
	formSet       bool
	validatorOpts []forms.Option

	animator  *visibility.Animator
	validator *forms.Validator
	theme     *ThemeToggle
	menu      *MobileMenu
}

// Bind constructs and wires every behavior against the document. Behaviors
// whose markup is missing are skipped; a missing contact form only disables
// validation, it does not fail the bind.
func Bind(ctx context.Context, doc *page.Document, options ...Option) (*Binder, error) {
	if ctx == nil {
		return nil, fmt.Errorf("behaviors: context is required")
	}
	if doc == nil {
		return nil, fmt.Errorf("behaviors: document is required")
	}

	b := &Binder{
		doc:   doc,
		clock: timing.NewClock(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}

	if b.viewport == nil {
		b.viewport = visibility.NewViewport(doc.ViewportHeight())
	}
	if b.selector == nil {
		b.selector = NewSelector(LandingManifest())
	}
	if !b.formSet {
		form, err := schema.Default(ctx)
		if err != nil {
			return nil, fmt.Errorf("behaviors: build default form model: %w", err)
		}
		b.form = form
	}

	b.theme = NewThemeToggle(doc, b.store, b.selector)
	b.menu = NewMobileMenu(doc)
	bindNavbarStyling(doc, b.viewport)
	bindParallax(doc, b.viewport)

	b.animator = visibility.NewAnimator(b.viewport, visibility.WithClock(b.clock))
	b.animator.RegisterReveals(doc.ByClass(page.ClassReveal))
	b.animator.RegisterCounters(doc.ByClass(page.ClassCounter))

	if doc.ByID(page.IDContactForm) != nil {
		opts := append([]forms.Option{forms.WithClock(b.clock)}, b.validatorOpts...)
		validator, err := forms.New(b.form, doc, opts...)
		if err != nil {
			return nil, fmt.Errorf("behaviors: bind contact form: %w", err)
		}
		b.validator = validator
	}

	return b, nil
}

// Document returns the bound document.
func (b *Binder) Document() *page.Document { return b.doc }

// Viewport returns the scroll/intersection source.
func (b *Binder) Viewport() *visibility.Viewport { return b.viewport }

// Form returns the form model the validator was bound against.
func (b *Binder) Form() schema.FormModel { return b.form }

// Animator returns the scroll-triggered animator.
func (b *Binder) Animator() *visibility.Animator { return b.animator }

// Validator returns the contact-form validator, or nil when the document has
// no contact form.
func (b *Binder) Validator() *forms.Validator { return b.validator }

// Theme returns the theme toggle.
func (b *Binder) Theme() *ThemeToggle { return b.theme }

// Menu returns the mobile menu behavior.
func (b *Binder) Menu() *MobileMenu { return b.menu }

// Scroll moves the viewport, driving navbar styling, parallax, and
// intersection-triggered animations.
func (b *Binder) Scroll(offset float64) {
	b.viewport.Scroll(offset)
}

// ClickAnchor handles an in-page anchor click ("#section" or "section"):
// the viewport scrolls to the target element's offset and the mobile menu
// closes, matching the nav-link behavior. Unknown targets are ignored.
func (b *Binder) ClickAnchor(href string) {
	id := strings.TrimPrefix(strings.TrimSpace(href), "#")
	if id == "" {
		return
	}
	target := b.doc.ByID(id)
	if target == nil {
		return
	}
	b.menu.Close()
	b.viewport.ScrollTo(target)
}

// Close stops in-flight animations. Safe to call more than once.
func (b *Binder) Close() {
	if b.animator != nil {
		b.animator.Stop()
	}
}
