package behaviors

import (
	"errors"
	"fmt"
	"sort"

	theme "github.com/goliatone/go-theme"

	"github.com/ansfaiz/NeuralForge/pkg/page"
	"github.com/ansfaiz/NeuralForge/pkg/prefs"
)

// Theme modes. Light is the manifest's base variant; dark is an overlay of
// token overrides.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// Toggle icon glyphs shown on the theme control: the icon advertises the
// mode a click switches to.
const (
	iconMoon = "☾"
	iconSun  = "☀"
)

// LandingManifest describes the landing page's palette as a go-theme
// manifest: base tokens are the light mode, the dark variant overrides them.
func LandingManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "neuralforge",
		Version: "1.0.0",
		Tokens: map[string]string{
			"bg-primary":   "#f8f9fd",
			"bg-surface":   "#ffffff",
			"text-primary": "#16161d",
			"text-muted":   "#5b5b6b",
			"accent":       "#6c4df6",
			"accent-soft":  "#ede9fe",
			"border":       "#e4e4ef",
		},
		Variants: map[string]theme.Variant{
			ModeDark: {
				Tokens: map[string]string{
					"bg-primary":   "#0c0c14",
					"bg-surface":   "#16161f",
					"text-primary": "#f2f2f7",
					"text-muted":   "#9d9dae",
					"accent":       "#8b71f8",
					"accent-soft":  "#241d45",
					"border":       "#26263a",
				},
			},
		},
	}
}

// manifestSelector resolves variants against a single in-process manifest.
type manifestSelector struct {
	manifest *theme.Manifest
}

// NewSelector wraps a manifest as a theme.ThemeSelector.
func NewSelector(manifest *theme.Manifest) theme.ThemeSelector {
	return manifestSelector{manifest: manifest}
}

func (s manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.manifest == nil {
		return nil, errors.New("behaviors: theme manifest is nil")
	}
	if name != "" && name != s.manifest.Name {
		return nil, fmt.Errorf("behaviors: unknown theme %q", name)
	}
	if variant != "" {
		if _, ok := s.manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("behaviors: theme %q has no variant %q", s.manifest.Name, variant)
		}
	}
	return &theme.Selection{
		Theme:    s.manifest.Name,
		Variant:  variant,
		Manifest: s.manifest,
	}, nil
}

// ThemeToggle flips the page between light and dark mode, re-deriving CSS
// custom properties from the selected variant's tokens and persisting the
// choice. The stored preference is read once when the toggle is created.
type ThemeToggle struct {
	root     *page.Element
	control  *page.Element
	store    *prefs.Store
	selector theme.ThemeSelector
	name     string
	mode     string
}

// NewThemeToggle binds the toggle to the document. A nil control element
// disables the click affordance but the programmatic API still works; a nil
// root disables class/CSS application. The persisted preference, when valid,
// wins over the default light mode.
func NewThemeToggle(doc *page.Document, store *prefs.Store, selector theme.ThemeSelector) *ThemeToggle {
	t := &ThemeToggle{
		store:    store,
		selector: selector,
		name:     "neuralforge",
		mode:     ModeLight,
	}
	if doc != nil {
		t.root = doc.ByID(page.IDBody)
		t.control = doc.ByID(page.IDThemeToggle)
	}
	if selector == nil {
		t.selector = NewSelector(LandingManifest())
	}
	if store != nil {
		if saved, ok := store.Get(prefs.ThemeKey); ok && (saved == ModeLight || saved == ModeDark) {
			t.mode = saved
		}
	}
	t.apply(t.mode)
	return t
}

// Mode reports the active theme mode.
func (t *ThemeToggle) Mode() string {
	if t == nil {
		return ModeLight
	}
	return t.mode
}

// Toggle flips the mode, applies it to the page, persists it, and returns
// the new mode. Persistence failures are swallowed: losing the preference
// must not break the page.
func (t *ThemeToggle) Toggle() string {
	next := ModeDark
	if t.mode == ModeDark {
		next = ModeLight
	}
	t.apply(next)
	if t.store != nil {
		_ = t.store.Set(prefs.ThemeKey, next)
	}
	return t.mode
}

func (t *ThemeToggle) apply(mode string) {
	t.mode = mode

	variant := ""
	icon := iconMoon
	if mode == ModeDark {
		variant = ModeDark
		icon = iconSun
		t.root.AddClass(page.ClassDarkMode)
	} else {
		t.root.RemoveClass(page.ClassDarkMode)
	}
	t.control.SetText(icon)

	selection, err := t.selector.Select(t.name, variant)
	if err != nil || selection == nil || selection.Manifest == nil {
		return
	}
	for name, value := range resolvedTokens(selection) {
		t.root.SetStyle("--"+name, value)
	}
}

// resolvedTokens merges the manifest's base tokens with the selected
// variant's overrides.
func resolvedTokens(selection *theme.Selection) map[string]string {
	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for name, value := range selection.Manifest.Tokens {
		tokens[name] = value
	}
	if selection.Variant != "" {
		if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
			for name, value := range variant.Tokens {
				tokens[name] = value
			}
		}
	}
	return tokens
}

// CSSVariables renders the active tokens as a deterministic list of CSS
// custom property declarations, the form the HTML renderer embeds.
func (t *ThemeToggle) CSSVariables() []string {
	selection, err := t.selector.Select(t.name, t.variantForMode())
	if err != nil || selection == nil || selection.Manifest == nil {
		return nil
	}
	tokens := resolvedTokens(selection)
	out := make([]string, 0, len(tokens))
	for name, value := range tokens {
		out = append(out, fmt.Sprintf("--%s: %s;", name, value))
	}
	sort.Strings(out)
	return out
}

func (t *ThemeToggle) variantForMode() string {
	if t.mode == ModeDark {
		return ModeDark
	}
	return ""
}
