// Package forms implements the contact-form validation behavior: per-field
// error state, lightweight on-blur checks, the authoritative full-form pass,
// and the simulated submission flow.
package forms

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/schema"
	"github.com/ansfaiz/NeuralForge/pkg/timing"
)

// defaultSubmitDelay is how long the simulated submission "pends" before the
// success panel replaces the form.
const defaultSubmitDelay = 1200 * time.Millisecond

// Labels shown on the submit control across the submission lifecycle.
const (
	defaultPendingLabel = "Sending..."
)

// blurCheckedFields lists the fields the partial on-blur validator polices.
// Subject and message are deliberately exempt; only the full-form pass
// evaluates them.
var blurCheckedFields = map[string]bool{
	"name":  true,
	"email": true,
}

// Option customises a Validator.
type Option func(*Validator)

// WithClock injects the time source used for the submission delay.
func WithClock(clock timing.Clock) Option {
	return func(v *Validator) {
		if clock != nil {
			v.clock = clock
		}
	}
}

// WithSubmitDelay overrides the simulated submission delay.
func WithSubmitDelay(d time.Duration) Option {
	return func(v *Validator) {
		if d > 0 {
			v.delay = d
		}
	}
}

// WithPendingLabel overrides the submit control's pending text.
func WithPendingLabel(label string) Option {
	return func(v *Validator) {
		if strings.TrimSpace(label) != "" {
			v.pendingLabel = label
		}
	}
}

// binding joins a schema field to the page elements it reads and writes.
type binding struct {
	field   schema.Field
	input   *page.Element
	errorEl *page.Element
	pattern *regexp.Regexp
}

// Validator enforces the form model's rules against the bound document
// elements. Error state lives in the error-display elements themselves so
// HasError is always derived from what the page currently shows, never
// cached.
type Validator struct {
	form  schema.FormModel
	doc   *page.Document
	clock timing.Clock
	delay time.Duration

	pendingLabel string
	bindings     map[string]*binding
	order        []string
}

// New binds a validator to the document. Fields whose input element is
// missing from the document are skipped silently; a form with no bound
// fields is an error because every operation would be a no-op.
func New(form schema.FormModel, doc *page.Document, options ...Option) (*Validator, error) {
	if doc == nil {
		return nil, errors.New("forms: document is required")
	}
	if len(form.Fields) == 0 {
		return nil, errors.New("forms: form model has no fields")
	}

	v := &Validator{
		form:         form,
		doc:          doc,
		clock:        timing.NewClock(),
		delay:        defaultSubmitDelay,
		pendingLabel: defaultPendingLabel,
		bindings:     make(map[string]*binding, len(form.Fields)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}

	for _, field := range form.Fields {
		input := doc.ByID(field.Name)
		if input == nil {
			continue
		}
		b := &binding{
			field:   field,
			input:   input,
			errorEl: doc.ByID(page.ErrorElementID(field.Name)),
		}
		if expr := field.Pattern(); expr != "" {
			// A pattern that fails to compile disables that rule rather
			// than breaking the whole form.
			if re, err := regexp.Compile(expr); err == nil {
				b.pattern = re
			}
		}
		v.bindings[field.Name] = b
		v.order = append(v.order, field.Name)
	}
	if len(v.bindings) == 0 {
		return nil, errors.New("forms: no form fields are present in the document")
	}

	return v, nil
}

// FieldNames returns the bound field names in form order.
func (v *Validator) FieldNames() []string {
	return append([]string(nil), v.order...)
}

// Value returns a bound field's current value.
func (v *Validator) Value(field string) string {
	b := v.bindings[field]
	if b == nil {
		return ""
	}
	return b.input.Value()
}

// Input records a value change on a field. Any displayed error for that
// field is cleared immediately, regardless of whether the new value is
// valid; the error can only reappear on the next validation pass.
func (v *Validator) Input(field, value string) {
	b := v.bindings[field]
	if b == nil {
		return
	}
	b.input.SetValue(value)
	v.clearBinding(b)
}

// ClearFieldError clears the field's error message and visual marker.
func (v *Validator) ClearFieldError(field string) {
	if b := v.bindings[field]; b != nil {
		v.clearBinding(b)
	}
}

// ValidateField runs the lightweight on-blur check for the field. Only name and email
// are policed here, and only when the trimmed value is non-empty; everything
// else defers to ValidateForm. The result is advisory, not authoritative.
func (v *Validator) ValidateField(field string) bool {
	b := v.bindings[field]
	if b == nil || !blurCheckedFields[field] {
		return true
	}
	value := strings.TrimSpace(b.input.Value())
	if value == "" {
		return true
	}
	if kind := v.violatedRule(b, value); kind != "" {
		v.showError(b, kind)
		return false
	}
	return true
}

// ValidateForm clears every field's error, then evaluates every rule
// unconditionally against the current values. It reports whether all fields
// pass and is the authoritative gate for submission.
func (v *Validator) ValidateForm() bool {
	for _, name := range v.order {
		v.clearBinding(v.bindings[name])
	}

	ok := true
	for _, name := range v.order {
		b := v.bindings[name]
		value := strings.TrimSpace(b.input.Value())
		if kind := v.violatedRule(b, value); kind != "" {
			v.showError(b, kind)
			ok = false
		}
	}
	return ok
}

// HasError reports whether the field currently displays an error.
func (v *Validator) HasError(field string) bool {
	return v.FieldError(field) != ""
}

// FieldError returns the field's displayed error message, or "".
func (v *Validator) FieldError(field string) string {
	b := v.bindings[field]
	if b == nil {
		return ""
	}
	return b.errorEl.Text()
}

// violatedRule evaluates the field's rules against the trimmed value and
// returns the kind of the first violated rule, or "" when the value passes.
// An empty required value reports as the field's primary rule so the error
// message names the actual constraint.
func (v *Validator) violatedRule(b *binding, trimmed string) string {
	min := b.field.MinLength()
	if min > 0 && len(trimmed) < min {
		return schema.RuleMinLength
	}
	if b.pattern != nil && !b.pattern.MatchString(trimmed) {
		return schema.RulePattern
	}
	if max := b.field.MaxLength(); max > 0 && len(trimmed) > max {
		return schema.RuleMaxLength
	}
	if b.field.Required && trimmed == "" {
		return "required"
	}
	return ""
}

func (v *Validator) showError(b *binding, ruleKind string) {
	b.input.AddClass(page.ClassError)
	b.errorEl.SetText(v.messageFor(b.field, ruleKind))
}

func (v *Validator) clearBinding(b *binding) {
	if b == nil {
		return
	}
	b.input.RemoveClass(page.ClassError)
	b.errorEl.SetText("")
}

func (v *Validator) messageFor(field schema.Field, ruleKind string) string {
	label := field.Label
	if label == "" {
		label = field.Name
	}
	switch ruleKind {
	case schema.RuleMinLength:
		return fmt.Sprintf("%s must be at least %d characters", label, field.MinLength())
	case schema.RuleMaxLength:
		return fmt.Sprintf("%s must be at most %d characters", label, field.MaxLength())
	case schema.RulePattern:
		return fmt.Sprintf("Please enter a valid %s", strings.ToLower(label))
	default:
		return fmt.Sprintf("%s is required", label)
	}
}
