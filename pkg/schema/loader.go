package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseOverride parses a YAML or JSON form document that states the fields
// and rules directly, bypassing the OpenAPI contract. JSON is attempted
// first, then YAML, matching how other schema files in this codebase are
// loaded.
func ParseOverride(data []byte) (FormModel, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return FormModel{}, errors.New("schema: override document is empty")
	}

	var doc overrideDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return FormModel{}, errors.New("schema: override document is not valid JSON or YAML")
		}
	}

	return doc.toModel()
}

type overrideDocument struct {
	Form   overrideForm    `json:"form" yaml:"form"`
	Fields []overrideField `json:"fields" yaml:"fields"`
}

type overrideForm struct {
	OperationID string `json:"operationId" yaml:"operationId"`
	Endpoint    string `json:"endpoint" yaml:"endpoint"`
	Method      string `json:"method" yaml:"method"`
	Summary     string `json:"summary" yaml:"summary"`
}

type overrideField struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Format      string `json:"format" yaml:"format"`
	Label       string `json:"label" yaml:"label"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Required    *bool  `json:"required" yaml:"required"`
	MinLength   int    `json:"minLength" yaml:"minLength"`
	MaxLength   int    `json:"maxLength" yaml:"maxLength"`
	Pattern     string `json:"pattern" yaml:"pattern"`
}

func (d overrideDocument) toModel() (FormModel, error) {
	if len(d.Fields) == 0 {
		return FormModel{}, errors.New("schema: override document defines no fields")
	}

	form := FormModel{
		OperationID: strings.TrimSpace(d.Form.OperationID),
		Endpoint:    strings.TrimSpace(d.Form.Endpoint),
		Method:      strings.ToUpper(strings.TrimSpace(d.Form.Method)),
		Summary:     strings.TrimSpace(d.Form.Summary),
	}
	if form.Method == "" {
		form.Method = "POST"
	}

	seen := make(map[string]bool, len(d.Fields))
	for i, raw := range d.Fields {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			return FormModel{}, fmt.Errorf("schema: override field %d has no name", i)
		}
		if seen[name] {
			return FormModel{}, fmt.Errorf("schema: override field %q is duplicated", name)
		}
		seen[name] = true

		field := Field{
			Name:        name,
			Type:        FieldTypeString,
			Format:      strings.TrimSpace(raw.Format),
			Required:    raw.Required == nil || *raw.Required,
			Label:       strings.TrimSpace(raw.Label),
			Placeholder: strings.TrimSpace(raw.Placeholder),
		}
		if raw.Type != "" {
			field.Type = FieldType(raw.Type)
		}
		if field.Label == "" {
			field.Label = defaultLabeler(name)
		}
		if raw.MinLength > 0 {
			field.Validations = append(field.Validations, ValidationRule{
				Kind:   RuleMinLength,
				Params: map[string]string{"value": fmt.Sprint(raw.MinLength)},
			})
		}
		if raw.MaxLength > 0 {
			field.Validations = append(field.Validations, ValidationRule{
				Kind:   RuleMaxLength,
				Params: map[string]string{"value": fmt.Sprint(raw.MaxLength)},
			})
		}
		if strings.TrimSpace(raw.Pattern) != "" {
			field.Validations = append(field.Validations, ValidationRule{
				Kind:   RulePattern,
				Params: map[string]string{"pattern": strings.TrimSpace(raw.Pattern)},
			})
		}

		form.Fields = append(form.Fields, field)
	}

	return form, nil
}
