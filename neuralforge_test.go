package neuralforge

import (
	"context"
	"strings"
	"testing"

	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/testsupport"
)

func TestBindAndRenderHTML(t *testing.T) {
	binder, err := Bind(context.Background(), testsupport.LandingDocument())
	if err != nil {
		t.Fatalf("bind page: %v", err)
	}
	defer binder.Close()

	binder.Theme().Toggle()
	binder.Scroll(120)

	html, err := RenderHTML(context.Background(), binder, "NeuralForge")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "<title>NeuralForge</title>") {
		t.Fatalf("rendered page missing title:\n%s", out)
	}
	if !strings.Contains(out, `class="dark-mode"`) {
		t.Fatalf("toggled theme should render dark:\n%s", out)
	}
	if !strings.Contains(out, "translateY(60px)") {
		t.Fatalf("parallax offset should render:\n%s", out)
	}
	if !binder.Document().ByID(page.IDNavbar).HasClass(page.ClassScrolled) {
		t.Fatalf("scroll should style the navbar")
	}
}
