package behaviors

import "github.com/ansfaiz/NeuralForge/pkg/page"

// MobileMenu toggles the hamburger navigation. Missing elements disable the
// affected half of the behavior silently.
type MobileMenu struct {
	hamburger *page.Element
	menu      *page.Element
}

// NewMobileMenu binds the menu behavior to the document.
func NewMobileMenu(doc *page.Document) *MobileMenu {
	m := &MobileMenu{}
	if doc != nil {
		m.hamburger = doc.ByID(page.IDHamburger)
		m.menu = doc.ByID(page.IDNavMenu)
	}
	return m
}

// Toggle handles a hamburger click and reports whether the menu is now open.
func (m *MobileMenu) Toggle() bool {
	m.hamburger.ToggleClass(page.ClassMenuOpen)
	return m.menu.ToggleClass(page.ClassMenuOpen)
}

// Close collapses the menu, the behavior attached to every nav link click.
func (m *MobileMenu) Close() {
	m.hamburger.RemoveClass(page.ClassMenuOpen)
	m.menu.RemoveClass(page.ClassMenuOpen)
}

// Open reports whether the menu is currently expanded.
func (m *MobileMenu) Open() bool {
	return m.menu.HasClass(page.ClassMenuOpen)
}
