package page

import "testing"

func TestDocumentByIDMissing(t *testing.T) {
	doc := NewDocument(900)
	if el := doc.ByID("nope"); el != nil {
		t.Fatalf("expected nil for unknown id, got %v", el)
	}
}

func TestDocumentLastWriteWins(t *testing.T) {
	doc := NewDocument(900)
	first := NewElement("div", "hero")
	second := NewElement("section", "hero")
	doc.Add(first, second)

	if got := doc.ByID("hero"); got != second {
		t.Fatalf("expected the later element to win the id")
	}
}

func TestDocumentByClassPreservesOrder(t *testing.T) {
	doc := NewDocument(900)
	a := NewElement("div", "a")
	a.AddClass("reveal")
	b := NewElement("div", "b")
	c := NewElement("div", "c")
	c.AddClass("reveal")
	doc.Add(a, b, c)

	got := doc.ByClass("reveal")
	if len(got) != 2 {
		t.Fatalf("expected 2 reveal elements, got %d", len(got))
	}
	if got[0] != a || got[1] != c {
		t.Fatalf("expected document order a, c")
	}
}

func TestDocumentViewportHeight(t *testing.T) {
	doc := NewDocument(768)
	if got := doc.ViewportHeight(); got != 768 {
		t.Fatalf("viewport height mismatch: got %v", got)
	}
}
