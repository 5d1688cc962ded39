package schema

import (
	"context"
	"embed"
)

//go:embed contract/contact.yaml
var contractFS embed.FS

// DefaultContract returns the embedded OpenAPI contract describing the
// landing page's contact operation.
func DefaultContract() []byte {
	data, err := contractFS.ReadFile("contract/contact.yaml")
	if err != nil {
		// The file is embedded at build time; a read failure is a packaging
		// bug, not a runtime condition.
		panic(err)
	}
	return data
}

// DefaultOperationID names the contact operation in the embedded contract.
const DefaultOperationID = "submitContact"

// DefaultSource wraps the embedded contract as a Source.
func DefaultSource() Source {
	return SourceFromBytes("embedded:contract/contact.yaml", DefaultContract())
}

// Default builds the contact form model from the embedded contract.
func Default(ctx context.Context) (FormModel, error) {
	return BuildFrom(ctx, DefaultSource(), DefaultOperationID)
}
