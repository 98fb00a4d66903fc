package validator

import (
	"fmt"

	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/schema"
	"github.com/ridoystarlord/prismaviz/visualise"
)

// ValidationError represents a validation finding with details
type ValidationError struct {
	Type     string `json:"type"`
	Model    string `json:"model,omitempty"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error", "warning", "info"
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// ValidationResult contains all validation results
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
	Info     []ValidationError `json:"info"`
}

// SchemaValidator checks one schema text: parse diagnostics, extraction
// warnings and the cross model consistency of relations.
type SchemaValidator struct {
	text string
	ast  *psl.SchemaAst
}

func NewSchemaValidator(text string) *SchemaValidator {
	return &SchemaValidator{text: text, ast: psl.Parse(text)}
}

// Validate runs every check. It never fails: problems are reported in the
// result and Valid is false when at least one error was found.
func (v *SchemaValidator) Validate() *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
		Info:     []ValidationError{},
	}

	for _, d := range v.ast.Diagnostics {
		issue := v.issue("syntax", string(d.Severity), d.Message, d.Span.Start)
		if d.Severity == psl.SeverityError {
			result.Errors = append(result.Errors, issue)
		} else {
			result.Warnings = append(result.Warnings, issue)
		}
	}

	extracted := visualise.NewSchemaVisualiser(v.text).FromAST(v.ast)
	for _, w := range extracted.Warnings {
		issue := v.issue(string(w.Kind), "warning", w.Message, w.Span.Start)
		issue.Model = w.Model
		issue.Field = w.Field
		result.Warnings = append(result.Warnings, issue)
	}

	models := make(map[string]schema.Model, len(extracted.Models))
	for _, m := range extracted.Models {
		models[m.Name] = m
	}
	declared := v.declaredTypes()
	for _, m := range extracted.Models {
		v.validateModel(m, models, declared, result)
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func (v *SchemaValidator) validateModel(model schema.Model, models map[string]schema.Model, declared map[string]bool, result *ValidationResult) {
	if !hasUniqueCriteria(model) {
		issue := v.issue("missing_id", "warning",
			fmt.Sprintf("model %s has no @id, @@id or @unique field", model.Name), model.Span.Start)
		issue.Model = model.Name
		result.Warnings = append(result.Warnings, issue)
	}

	for _, field := range model.Fields {
		switch field.Type.Kind {
		case schema.Relation:
			if !declared[field.Type.Name] {
				issue := v.issue("unknown_type", "error",
					fmt.Sprintf("type %s is neither a built-in type nor declared in the schema", field.Type.Name), model.Span.Start)
				issue.Model, issue.Field = model.Name, field.Name
				result.Errors = append(result.Errors, issue)
				continue
			}
			v.validateRelation(model, field, models, result)
		case schema.Unsupported:
			issue := v.issue("unsupported_type", "info",
				fmt.Sprintf("field uses %s and is only shown as text", field.Type), model.Span.Start)
			issue.Model, issue.Field = model.Name, field.Name
			result.Info = append(result.Info, issue)
		}
	}
}

func (v *SchemaValidator) validateRelation(model schema.Model, field schema.Field, models map[string]schema.Model, result *ValidationResult) {
	rel := field.Relationship
	if rel.IsEmpty() {
		return
	}
	report := func(kind, msg string) {
		issue := v.issue(kind, "warning", msg, model.Span.Start)
		issue.Model, issue.Field = model.Name, field.Name
		result.Warnings = append(result.Warnings, issue)
	}

	if len(rel.OwnFields) != len(rel.ReferencedFields) {
		report("relation_arity", fmt.Sprintf("relation lists %d fields but %d references",
			len(rel.OwnFields), len(rel.ReferencedFields)))
	}
	for _, name := range rel.OwnFields {
		if !hasField(model, name) {
			report("unknown_relation_field", fmt.Sprintf("fields: %s is not a field of %s", name, model.Name))
		}
	}
	target, ok := models[field.Type.Name]
	if !ok {
		return
	}
	for _, name := range rel.ReferencedFields {
		if !hasField(target, name) {
			report("unknown_relation_reference", fmt.Sprintf("references: %s is not a field of %s", name, target.Name))
		}
	}
}

func (v *SchemaValidator) declaredTypes() map[string]bool {
	names := map[string]bool{}
	for _, top := range v.ast.Tops {
		switch top.TopType() {
		case "model", "view", "type", "enum":
			names[top.TopName()] = true
		}
	}
	return names
}

func (v *SchemaValidator) issue(kind, severity, msg string, offset int) ValidationError {
	line, col := psl.LineColumn(v.text, offset)
	return ValidationError{
		Type:     kind,
		Severity: severity,
		Message:  msg,
		Line:     line,
		Column:   col,
	}
}

func hasUniqueCriteria(model schema.Model) bool {
	for _, f := range model.Fields {
		if f.IsID || f.IsUnique {
			return true
		}
		for _, c := range f.Constraints {
			if c.Name == "id" || c.Name == "unique" {
				return true
			}
		}
	}
	return false
}

func hasField(model schema.Model, name string) bool {
	for _, f := range model.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}
