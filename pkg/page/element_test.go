package page

import (
	"github.com/google/go-cmp/cmp"
	"testing"
)

func TestClassOperations(t *testing.T) {
	el := NewElement("div", "card")

	el.AddClass("reveal")
	el.AddClass("reveal")
	if !el.HasClass("reveal") {
		t.Fatalf("expected reveal class to be present")
	}
	if diff := cmp.Diff([]string{"reveal"}, el.ClassList()); diff != "" {
		t.Fatalf("class list mismatch (-want +got):\n%s", diff)
	}

	if on := el.ToggleClass("active"); !on {
		t.Fatalf("toggle on should report true")
	}
	if on := el.ToggleClass("active"); on {
		t.Fatalf("toggle off should report false")
	}
	if el.HasClass("active") {
		t.Fatalf("active class should be gone after second toggle")
	}

	el.RemoveClass("reveal")
	if el.HasClass("reveal") {
		t.Fatalf("reveal class should be removed")
	}
}

func TestIntAttrParseOrZero(t *testing.T) {
	el := NewElement("span", "stat")
	el.SetAttr("data-target", "1500")
	if got := el.IntAttr("data-target"); got != 1500 {
		t.Fatalf("expected 1500, got %d", got)
	}

	el.SetAttr("data-target", "150k")
	if got := el.IntAttr("data-target"); got != 0 {
		t.Fatalf("malformed attribute should parse to 0, got %d", got)
	}
	if got := el.IntAttr("data-missing"); got != 0 {
		t.Fatalf("absent attribute should parse to 0, got %d", got)
	}
}

func TestValueRoundTrip(t *testing.T) {
	el := NewElement("input", "email")
	if el.Value() != "" {
		t.Fatalf("fresh input should have empty value")
	}
	el.SetValue("a@b.co")
	if got := el.Value(); got != "a@b.co" {
		t.Fatalf("value mismatch: got %q", got)
	}
}

func TestHiddenAndDisabled(t *testing.T) {
	el := NewElement("button", "submit-btn")
	el.Hide()
	if !el.Hidden() {
		t.Fatalf("expected element hidden")
	}
	el.Show()
	if el.Hidden() {
		t.Fatalf("expected element visible")
	}
	el.SetDisabled(true)
	if !el.Disabled() {
		t.Fatalf("expected element disabled")
	}
}

func TestNilElementIsSafe(t *testing.T) {
	var el *Element

	el.AddClass("x")
	el.RemoveClass("x")
	el.SetText("y")
	el.SetValue("z")
	el.SetAttr("a", "b")
	el.SetStyle("color", "red")
	el.Hide()
	el.Show()
	el.SetDisabled(true)

	if el.HasClass("x") {
		t.Fatalf("nil element should have no classes")
	}
	if el.Text() != "" || el.Value() != "" || el.Attr("a") != "" || el.Style("color") != "" {
		t.Fatalf("nil element reads should be zero values")
	}
	if el.IntAttr("a") != 0 {
		t.Fatalf("nil element IntAttr should be 0")
	}
	if el.Hidden() || el.Disabled() {
		t.Fatalf("nil element state reads should be false")
	}
}

func TestErrorElementID(t *testing.T) {
	if got := ErrorElementID("email"); got != "email-error" {
		t.Fatalf("expected email-error, got %q", got)
	}
}
