package page

// The landing markup exposes a fixed set of identifiers, class tokens, and
// data attributes that the behavior layer binds against. They are collected
// here as typed constants so a drifting template shows up as a compile-time
// reference instead of a silent string mismatch.

// Known element ids. The body carries an explicit id so the behavior layer
// can address it like any other element.
const (
	IDBody         = "body"
	IDNavbar       = "navbar"
	IDHamburger    = "hamburger"
	IDNavMenu      = "nav-menu"
	IDThemeToggle  = "theme-toggle"
	IDHero         = "hero"
	IDContactForm  = "contact-form"
	IDFormSuccess  = "form-success"
	IDSubmitButton = "submit-btn"
)

// Class tokens toggled by the behaviors.
const (
	ClassReveal   = "reveal"
	ClassVisible  = "visible"
	ClassCounter  = "stat-number"
	ClassScrolled = "scrolled"
	ClassMenuOpen = "active"
	ClassDarkMode = "dark-mode"
	ClassError    = "error"
	ClassNavLink  = "nav-link"
)

// Data attributes read by the animator.
const (
	AttrCounterTarget = "data-target"
	AttrCounterSuffix = "data-suffix"
)

// ErrorElementSuffix joins a field id to its sibling error-display element,
// e.g. "email" -> "email-error".
const ErrorElementSuffix = "-error"

// ErrorElementID returns the id of the error-display sibling for a field.
func ErrorElementID(fieldID string) string {
	if fieldID == "" {
		return ""
	}
	return fieldID + ErrorElementSuffix
}
