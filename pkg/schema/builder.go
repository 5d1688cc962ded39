package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Options configures the builder. A nil Labeler falls back to title-casing
// the field name.
type Options struct {
	Labeler func(name string) string
}

// Builder converts an OpenAPI contract into a FormModel.
type Builder struct {
	opts Options
}

// NewBuilder creates a Builder with the supplied options.
func NewBuilder(options Options) *Builder {
	if options.Labeler == nil {
		options.Labeler = defaultLabeler
	}
	return &Builder{opts: options}
}

// Build parses the raw OpenAPI document and extracts the operation with the
// given id into a form model. An empty operationID selects the first
// operation found that carries a request body.
func (b *Builder) Build(ctx context.Context, raw []byte, operationID string) (FormModel, error) {
	if ctx == nil {
		return FormModel{}, errors.New("schema: context is required")
	}
	if len(raw) == 0 {
		return FormModel{}, errors.New("schema: contract payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return FormModel{}, fmt.Errorf("schema: load contract: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return FormModel{}, errors.New("schema: contract does not contain any paths")
	}

	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range operationsByMethod(item) {
			if op == nil {
				continue
			}
			if operationID != "" && op.OperationID != operationID {
				continue
			}
			form, ok, err := b.formFromOperation(op, method, path)
			if err != nil {
				return FormModel{}, err
			}
			if ok {
				return form, nil
			}
			if operationID != "" {
				return FormModel{}, fmt.Errorf("schema: operation %q has no usable request body", operationID)
			}
		}
	}

	if operationID != "" {
		return FormModel{}, fmt.Errorf("schema: operation %q not found", operationID)
	}
	return FormModel{}, errors.New("schema: no operation with a request body found")
}

func operationsByMethod(item *openapi3.PathItem) map[string]*openapi3.Operation {
	return map[string]*openapi3.Operation{
		"POST":   item.Post,
		"PUT":    item.Put,
		"PATCH":  item.Patch,
		"GET":    item.Get,
		"DELETE": item.Delete,
	}
}

func (b *Builder) formFromOperation(op *openapi3.Operation, method, path string) (FormModel, bool, error) {
	body := requestSchema(op.RequestBody)
	if body == nil || len(body.Properties) == 0 {
		return FormModel{}, false, nil
	}

	form := FormModel{
		OperationID: op.OperationID,
		Endpoint:    path,
		Method:      strings.ToUpper(method),
		Summary:     op.Summary,
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	for _, name := range orderedPropertyNames(body) {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		form.Fields = append(form.Fields, b.fieldFromProperty(name, ref.Value, required[name]))
	}

	if len(form.Fields) == 0 {
		return FormModel{}, false, nil
	}
	return form, true, nil
}

// orderedPropertyNames works around the unordered property map: names listed
// in the schema's required array keep that order, any extras follow sorted.
func orderedPropertyNames(schema *openapi3.Schema) []string {
	seen := make(map[string]bool, len(schema.Properties))
	var out []string
	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; ok && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	var rest []string
	for name := range schema.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/x-www-form-urlencoded", "application/json", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func (b *Builder) fieldFromProperty(name string, src *openapi3.Schema, required bool) Field {
	field := Field{
		Name:        name,
		Type:        fieldType(src.Type),
		Format:      src.Format,
		Required:    required,
		Label:       b.opts.Labeler(name),
		Description: src.Description,
	}

	if src.MinLength != 0 {
		field.Validations = append(field.Validations, ValidationRule{
			Kind:   RuleMinLength,
			Params: map[string]string{"value": strconv.FormatUint(src.MinLength, 10)},
		})
	}
	if src.MaxLength != nil {
		field.Validations = append(field.Validations, ValidationRule{
			Kind:   RuleMaxLength,
			Params: map[string]string{"value": strconv.FormatUint(*src.MaxLength, 10)},
		})
	}
	if src.Pattern != "" {
		field.Validations = append(field.Validations, ValidationRule{
			Kind:   RulePattern,
			Params: map[string]string{"pattern": src.Pattern},
		})
	}

	return field
}

func fieldType(types *openapi3.Types) FieldType {
	if types == nil {
		return FieldTypeString
	}
	values := types.Slice()
	if len(values) == 0 {
		return FieldTypeString
	}
	switch values[0] {
	case "integer":
		return FieldTypeInteger
	case "number":
		return FieldTypeNumber
	case "boolean":
		return FieldTypeBoolean
	default:
		return FieldTypeString
	}
}

func defaultLabeler(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func intParam(rules []ValidationRule, kind string) int {
	for _, rule := range rules {
		if rule.Kind != kind {
			continue
		}
		value, err := strconv.Atoi(rule.Params["value"])
		if err != nil {
			return 0
		}
		return value
	}
	return 0
}
