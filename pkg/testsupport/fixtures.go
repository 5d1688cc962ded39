package testsupport

import (
	"fmt"

	"github.com/ansfaiz/NeuralForge/pkg/page"
)

// LandingDocument builds the standard landing page fixture: navigation
// chrome, reveal cards, animated counters, and the contact form with its
// error slots. Viewport height is 900.
func LandingDocument() *page.Document {
	doc := page.NewDocument(900)

	doc.Add(
		page.NewElement("body", page.IDBody),
		page.NewElement("nav", page.IDNavbar),
		page.NewElement("button", page.IDHamburger),
		page.NewElement("ul", page.IDNavMenu),
		page.NewElement("button", page.IDThemeToggle),
	)

	hero := page.NewElement("section", page.IDHero)
	hero.SetRect(page.Rect{Top: 0, Height: 600})
	doc.Add(hero)

	stats := []struct {
		id     string
		target string
		suffix string
		top    float64
	}{
		{"stat-projects", "1500", "+", 700},
		{"stat-accuracy", "98", "%", 700},
		{"stat-uptime", "24", "/7", 700},
	}
	for _, s := range stats {
		el := page.NewElement("span", s.id)
		el.AddClass(page.ClassCounter)
		el.SetAttr(page.AttrCounterTarget, s.target)
		el.SetAttr(page.AttrCounterSuffix, s.suffix)
		el.SetRect(page.Rect{Top: s.top, Height: 60})
		doc.Add(el)
	}

	for i, top := range []float64{1000, 1400, 1800} {
		card := page.NewElement("div", fmt.Sprintf("card-%d", i+1))
		card.AddClass(page.ClassReveal)
		card.SetRect(page.Rect{Top: top, Height: 300})
		doc.Add(card)
	}

	form := page.NewElement("form", page.IDContactForm)
	form.SetRect(page.Rect{Top: 2200, Height: 500})
	doc.Add(form)

	for _, name := range []string{"name", "email", "subject", "message"} {
		tag := "input"
		if name == "message" {
			tag = "textarea"
		}
		doc.Add(
			page.NewElement(tag, name),
			page.NewElement("span", page.ErrorElementID(name)),
		)
	}

	button := page.NewElement("button", page.IDSubmitButton)
	button.SetText("Send Message")
	doc.Add(button)

	success := page.NewElement("div", page.IDFormSuccess)
	success.Hide()
	doc.Add(success)

	return doc
}
