// Package schema owns the contact-form model: which fields exist, how they
// are labelled, and which validation rules gate them. The default model is
// built from an embedded OpenAPI contract so the form definition lives in a
// document rather than in code; callers can also supply a YAML/JSON override
// document.
package schema

// FieldType is the simplified enum for form-friendly field kinds. The contact
// form only carries strings, but the enum matches the wire values OpenAPI
// produces so overrides stay honest.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

// Validation rule kinds. Length limits encode their threshold in
// Params["value"]; pattern rules keep the expression in Params["pattern"].
const (
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RulePattern   = "pattern"
)

// ValidationRule is a single constraint applied to a field.
type ValidationRule struct {
	Kind   string            `json:"kind" yaml:"kind"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Field models one input of the contact form.
type Field struct {
	Name        string           `json:"name" yaml:"name"`
	Type        FieldType        `json:"type" yaml:"type"`
	Format      string           `json:"format,omitempty" yaml:"format,omitempty"`
	Required    bool             `json:"required" yaml:"required"`
	Label       string           `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Validations []ValidationRule `json:"validations,omitempty" yaml:"validations,omitempty"`
}

// MinLength returns the field's minimum-length rule value, or 0 when absent.
func (f Field) MinLength() int {
	return intParam(f.Validations, RuleMinLength)
}

// MaxLength returns the field's maximum-length rule value, or 0 when absent.
func (f Field) MaxLength() int {
	return intParam(f.Validations, RuleMaxLength)
}

// Pattern returns the field's pattern expression, or "" when absent.
func (f Field) Pattern() string {
	for _, rule := range f.Validations {
		if rule.Kind == RulePattern {
			return rule.Params["pattern"]
		}
	}
	return ""
}

// FormModel is the top-level representation the validator and renderers
// consume.
type FormModel struct {
	OperationID string  `json:"operationId" yaml:"operationId"`
	Endpoint    string  `json:"endpoint" yaml:"endpoint"`
	Method      string  `json:"method" yaml:"method"`
	Summary     string  `json:"summary,omitempty" yaml:"summary,omitempty"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// Field returns the named field and whether it exists.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames returns the field names in declaration order.
func (m FormModel) FieldNames() []string {
	out := make([]string, 0, len(m.Fields))
	for _, field := range m.Fields {
		out = append(out, field.Name)
	}
	return out
}
