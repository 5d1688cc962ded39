package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewEngineRequiresSource(t *testing.T) {
	if _, err := NewEngine(); err == nil {
		t.Fatalf("expected an error without a base dir or fs.FS")
	}
}

func TestRenderStringInline(t *testing.T) {
	engine, err := NewEngine(WithFS(TemplatesFS()))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	got, err := engine.RenderString("Hello {{ name }}!", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Hello Ada!" {
		t.Fatalf("inline render mismatch: %q", got)
	}
}

func TestRenderDispatchesInlineVsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "greet.tmpl"), []byte("Hi {{ name }}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine, err := NewEngine(WithBaseDir(dir))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	inline, err := engine.Render("{{ name }}", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "Ada" {
		t.Fatalf("inline dispatch mismatch: %q", inline)
	}

	// Extension is appended automatically for file names.
	fromFile, err := engine.Render("greet", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render file: %v", err)
	}
	if fromFile != "Hi Ada" {
		t.Fatalf("file dispatch mismatch: %q", fromFile)
	}
}

func TestRenderTemplateWritesToWriter(t *testing.T) {
	engine, err := NewEngine(WithFS(TemplatesFS()))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	var buf bytes.Buffer
	if _, err := engine.RenderString("x={{ x }}", map[string]any{"x": 7}, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != "x=7" {
		t.Fatalf("writer output mismatch: %q", got)
	}
}

func TestGlobalContextAvailableToTemplates(t *testing.T) {
	engine, err := NewEngine(
		WithFS(TemplatesFS()),
		WithGlobalData(map[string]any{"product": "NeuralForge"}),
	)
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	got, err := engine.RenderString("{{ product }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "NeuralForge" {
		t.Fatalf("global data mismatch: %q", got)
	}
}

func TestRenderStructDataByTag(t *testing.T) {
	engine, err := NewEngine(WithFS(TemplatesFS()))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	data := struct {
		DisplayName string `json:"display_name"`
	}{DisplayName: "Ada"}

	got, err := engine.RenderString("{{ display_name }}", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Ada" {
		t.Fatalf("struct data should resolve by JSON tag, got %q", got)
	}
}

func TestEmbeddedLandingTemplateParses(t *testing.T) {
	engine, err := NewEngine(WithFS(TemplatesFS()))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	out, err := engine.RenderTemplate("templates/landing.tmpl", map[string]any{
		"page": map[string]any{"title": "Smoke"},
	})
	if err != nil {
		t.Fatalf("render embedded template: %v", err)
	}
	if !strings.Contains(out, "<title>Smoke</title>") {
		t.Fatalf("embedded template output mismatch:\n%s", out)
	}
}
