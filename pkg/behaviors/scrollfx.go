package behaviors

import (
	"fmt"

	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/visibility"
)

// Scroll-effect tuning, reproduced from the landing page.
const (
	navbarScrolledAfter = 50.0
	parallaxFactor      = 0.5
)

// bindNavbarStyling adds the scrolled class once the offset passes the
// threshold and removes it again near the top.
func bindNavbarStyling(doc *page.Document, vp *visibility.Viewport) {
	navbar := doc.ByID(page.IDNavbar)
	if navbar == nil || vp == nil {
		return
	}
	vp.OnScroll(func(offset float64) {
		if offset > navbarScrolledAfter {
			navbar.AddClass(page.ClassScrolled)
		} else {
			navbar.RemoveClass(page.ClassScrolled)
		}
	})
}

// bindParallax translates the hero at half scroll speed.
func bindParallax(doc *page.Document, vp *visibility.Viewport) {
	hero := doc.ByID(page.IDHero)
	if hero == nil || vp == nil {
		return
	}
	vp.OnScroll(func(offset float64) {
		hero.SetStyle("transform", fmt.Sprintf("translateY(%gpx)", offset*parallaxFactor))
	})
}
