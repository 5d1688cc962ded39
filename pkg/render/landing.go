package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/schema"
)

// Option configures the landing snapshot renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Landing renders a page snapshot to HTML.
type Landing struct {
	templates TemplateRenderer
}

// NewLanding constructs the renderer, defaulting to the embedded templates.
func NewLanding(options ...Option) (*Landing, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := NewEngine(WithFS(cfg.templateFS), WithExtension(".tmpl"))
		if err != nil {
			return nil, fmt.Errorf("render: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Landing{templates: renderer}, nil
}

// ContentType reports the serialization format used by Render.
func (r *Landing) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML snapshot.
func (r *Landing) Render(ctx context.Context, snap Snapshot) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("render: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("render: template renderer is nil")
	}

	// Round-trip the snapshot through JSON so templates address fields by
	// their tag names.
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("render: encode snapshot: %w", err)
	}
	var view map[string]any
	if err := json.Unmarshal(payload, &view); err != nil {
		return nil, fmt.Errorf("render: decode snapshot: %w", err)
	}

	result, err := r.templates.RenderTemplate("templates/landing.tmpl", map[string]any{
		"page": view,
	})
	if err != nil {
		return nil, fmt.Errorf("render: render landing: %w", err)
	}
	return []byte(result), nil
}

// Snapshot is the template-facing view of the page's current state.
type Snapshot struct {
	Title          string    `json:"title"`
	DarkMode       bool      `json:"dark_mode"`
	CSSVars        []string  `json:"css_vars"`
	NavbarScrolled bool      `json:"navbar_scrolled"`
	MenuOpen       bool      `json:"menu_open"`
	HeroTransform  string    `json:"hero_transform"`
	Stats          []Stat    `json:"stats"`
	Form           *FormView `json:"form,omitempty"`
	SuccessVisible bool      `json:"success_visible"`
}

// Stat is one animated counter's current display text.
type Stat struct {
	Text string `json:"text"`
}

// FormView is the contact form's current state.
type FormView struct {
	Hidden         bool        `json:"hidden"`
	SubmitLabel    string      `json:"submit_label"`
	SubmitDisabled bool        `json:"submit_disabled"`
	Fields         []FieldView `json:"fields"`
}

// FieldView is one input's current state. Value and Error pass through the
// user-content sanitizer before templating.
type FieldView struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
	Error       string `json:"error"`
	Invalid     bool   `json:"invalid"`
	Textarea    bool   `json:"textarea"`
}

// BuildSnapshot assembles the template view from the live document and form
// model. Missing markup simply yields empty sections, matching the page's
// degrade-silently contract.
func BuildSnapshot(doc *page.Document, form schema.FormModel, title string, cssVars []string) Snapshot {
	snap := Snapshot{
		Title:   title,
		CSSVars: append([]string(nil), cssVars...),
	}
	if doc == nil {
		return snap
	}

	body := doc.ByID(page.IDBody)
	snap.DarkMode = body.HasClass(page.ClassDarkMode)
	snap.NavbarScrolled = doc.ByID(page.IDNavbar).HasClass(page.ClassScrolled)
	snap.MenuOpen = doc.ByID(page.IDNavMenu).HasClass(page.ClassMenuOpen)
	snap.HeroTransform = doc.ByID(page.IDHero).Style("transform")

	for _, el := range doc.ByClass(page.ClassCounter) {
		snap.Stats = append(snap.Stats, Stat{Text: el.Text()})
	}

	success := doc.ByID(page.IDFormSuccess)
	snap.SuccessVisible = success != nil && !success.Hidden() && success.HasClass(page.ClassVisible)

	formEl := doc.ByID(page.IDContactForm)
	if formEl == nil {
		return snap
	}
	view := &FormView{Hidden: formEl.Hidden()}

	button := doc.ByID(page.IDSubmitButton)
	view.SubmitLabel = button.Text()
	view.SubmitDisabled = button.Disabled()

	for _, field := range form.Fields {
		input := doc.ByID(field.Name)
		if input == nil {
			continue
		}
		view.Fields = append(view.Fields, FieldView{
			Name:        field.Name,
			Label:       field.Label,
			Placeholder: field.Placeholder,
			Value:       SanitizeUserText(input.Value()),
			Error:       SanitizeUserText(doc.ByID(page.ErrorElementID(field.Name)).Text()),
			Invalid:     input.HasClass(page.ClassError),
			Textarea:    field.Format == "textarea",
		})
	}
	snap.Form = view
	return snap
}
