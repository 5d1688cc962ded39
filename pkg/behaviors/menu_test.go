package behaviors

import (
	"testing"

	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/testsupport"
)

func TestMenuToggleAndClose(t *testing.T) {
	doc := testsupport.LandingDocument()
	menu := NewMobileMenu(doc)

	if menu.Open() {
		t.Fatalf("menu should start closed")
	}
	if !menu.Toggle() {
		t.Fatalf("first toggle should open the menu")
	}
	if !doc.ByID(page.IDHamburger).HasClass(page.ClassMenuOpen) {
		t.Fatalf("hamburger should mirror the open state")
	}

	menu.Close()
	if menu.Open() {
		t.Fatalf("close should collapse the menu")
	}
	if doc.ByID(page.IDHamburger).HasClass(page.ClassMenuOpen) {
		t.Fatalf("close should reset the hamburger")
	}
}

func TestMenuWithMissingMarkup(t *testing.T) {
	menu := NewMobileMenu(page.NewDocument(900))

	// All operations degrade silently without the elements.
	menu.Toggle()
	menu.Close()
	if menu.Open() {
		t.Fatalf("missing markup can never report open")
	}
}
