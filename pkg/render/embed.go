package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// TemplatesFS exposes the built-in landing templates so callers can reuse or
// extend them without reaching into the package directory.
func TemplatesFS() fs.FS {
	return templatesFS
}
