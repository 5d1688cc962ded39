package page

import (
	"sync"
)

// Document indexes the elements of a pre-rendered page by id and class. It is
// deliberately forgiving: lookups for missing elements return nil and the
// behaviors treat a nil element as "feature absent" rather than an error, per
// the degrade-silently contract of the host markup.
type Document struct {
	mu        sync.RWMutex
	byID      map[string]*Element
	ordered   []*Element
	viewportH float64
}

// NewDocument constructs an empty document with the given viewport height.
// The height participates in intersection math; zero is allowed and simply
// means nothing is ever visible.
func NewDocument(viewportHeight float64) *Document {
	return &Document{
		byID:      make(map[string]*Element),
		viewportH: viewportHeight,
	}
}

// ViewportHeight reports the configured viewport height.
func (d *Document) ViewportHeight() float64 {
	if d == nil {
		return 0
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.viewportH
}

// Add registers an element with the document. Elements with duplicate ids
// replace earlier ones, matching last-write-wins id resolution in HTML
// tooling. Nil elements are ignored.
func (d *Document) Add(elements ...*Element) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, el := range elements {
		if el == nil {
			continue
		}
		d.ordered = append(d.ordered, el)
		if el.ID() != "" {
			d.byID[el.ID()] = el
		}
	}
}

// ByID returns the element with the given id, or nil when absent.
func (d *Document) ByID(id string) *Element {
	if d == nil || id == "" {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.byID[id]
}

// ByClass returns all elements carrying the class token, in document order.
func (d *Document) ByClass(class string) []*Element {
	if d == nil || class == "" {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []*Element
	for _, el := range d.ordered {
		if el.HasClass(class) {
			out = append(out, el)
		}
	}
	return out
}

// Elements returns every registered element in document order.
func (d *Document) Elements() []*Element {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*Element(nil), d.ordered...)
}
