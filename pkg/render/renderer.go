// Package render produces static HTML snapshots of the landing page's
// current state: theme tokens, animation progress, form values, and error
// chrome. Rendering goes through the TemplateRenderer seam so the engine can
// be swapped in tests.
package render

import "io"

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract, providing the seam the snapshot renderer relies on.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
