package page

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Rect describes an element's box in document coordinates. Only the vertical
// axis matters to the behaviors in this module (scroll styling, intersection,
// parallax), so horizontal geometry is omitted.
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns the document offset of the element's lower edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Element is an in-memory stand-in for a host-document node. Behaviors receive
// the elements they operate on explicitly instead of looking them up through a
// process-wide document, which keeps every component testable in isolation.
//
// Elements guard their mutable state with a mutex because counter animations
// advance on their own frame loop while the rest of the page reacts to scroll
// and input events.
type Element struct {
	mu sync.RWMutex

	id      string
	tag     string
	classes map[string]struct{}
	attrs   map[string]string
	styles  map[string]string
	text    string

	rect     Rect
	hidden   bool
	disabled bool
}

// NewElement constructs an element with the given tag and id. The id may be
// empty for anonymous nodes such as reveal cards.
func NewElement(tag, id string) *Element {
	return &Element{
		id:      strings.TrimSpace(id),
		tag:     strings.TrimSpace(tag),
		classes: make(map[string]struct{}),
		attrs:   make(map[string]string),
		styles:  make(map[string]string),
	}
}

// ID reports the element identifier.
func (e *Element) ID() string {
	if e == nil {
		return ""
	}
	return e.id
}

// Tag reports the element tag name.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	return e.tag
}

// AddClass adds a class token. Adding an existing token is a no-op, matching
// classList semantics.
func (e *Element) AddClass(class string) {
	if e == nil || strings.TrimSpace(class) == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.classes[class] = struct{}{}
}

// RemoveClass drops a class token if present.
func (e *Element) RemoveClass(class string) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.classes, class)
}

// ToggleClass flips a class token and reports whether it is now present.
func (e *Element) ToggleClass(class string) bool {
	if e == nil || strings.TrimSpace(class) == "" {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.classes[class]; ok {
		delete(e.classes, class)
		return false
	}
	e.classes[class] = struct{}{}
	return true
}

// HasClass reports whether the class token is present.
func (e *Element) HasClass(class string) bool {
	if e == nil {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.classes[class]
	return ok
}

// ClassList returns the sorted class tokens.
func (e *Element) ClassList() []string {
	if e == nil {
		return nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.classes))
	for class := range e.classes {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

// Text returns the element's text content.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text
}

// SetValue replaces an input control's current value. Emitting the input
// event that accompanies a user edit is the caller's job (see
// forms.Validator.Input), mirroring how the host document owns field values.
func (e *Element) SetValue(value string) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs["value"] = value
}

// Value returns an input control's current value.
func (e *Element) Value() string {
	return e.Attr("value")
}

// SetAttr stores an attribute value. Empty names are ignored.
func (e *Element) SetAttr(name, value string) {
	if e == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[name] = value
}

// Attr returns an attribute value; missing attributes yield the empty string.
func (e *Element) Attr(name string) string {
	if e == nil {
		return ""
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.attrs[name]
}

// IntAttr parses an attribute as a base-10 integer. Missing or malformed
// values yield zero, matching the parse-or-zero policy for counter targets.
func (e *Element) IntAttr(name string) int {
	raw := strings.TrimSpace(e.Attr(name))
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

// SetStyle stores an inline style property.
func (e *Element) SetStyle(property, value string) {
	if e == nil {
		return
	}
	property = strings.TrimSpace(property)
	if property == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.styles[property] = value
}

// Style returns an inline style property value.
func (e *Element) Style(property string) string {
	if e == nil {
		return ""
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.styles[property]
}

// SetRect positions the element in document coordinates.
func (e *Element) SetRect(rect Rect) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rect = rect
}

// RectValue returns the element's current box.
func (e *Element) RectValue() Rect {
	if e == nil {
		return Rect{}
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rect
}

// Hide removes the element from the visual flow (display:none analogue).
func (e *Element) Hide() {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hidden = true
}

// Show restores a hidden element.
func (e *Element) Show() {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hidden = false
}

// Hidden reports whether the element is hidden.
func (e *Element) Hidden() bool {
	if e == nil {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hidden
}

// SetDisabled flips the disabled state used by form controls.
func (e *Element) SetDisabled(disabled bool) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disabled = disabled
}

// Disabled reports whether the control is disabled.
func (e *Element) Disabled() bool {
	if e == nil {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.disabled
}
