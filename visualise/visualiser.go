package visualise

import (
	"fmt"

	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/schema"
)

// Result is the semantic model of one schema text.
type Result struct {
	Schema      string
	Models      []schema.Model
	Diagnostics psl.Diagnostics
	Warnings    []Warning
}

// SchemaVisualiser extracts models from one schema text. It holds no state
// beyond the text, so every call to Parse re-reads it from scratch.
type SchemaVisualiser struct {
	schema string
}

func NewSchemaVisualiser(contents string) *SchemaVisualiser {
	return &SchemaVisualiser{schema: contents}
}

// Extract parses and extracts the models of text in one go.
func Extract(text string) (*Result, error) {
	return NewSchemaVisualiser(text).Parse()
}

// Parse extracts every model declaration in document order. When the parser
// reports errors, the partial result is returned together with an
// *UnparsableSchemaError.
func (v *SchemaVisualiser) Parse() (*Result, error) {
	ast := psl.Parse(v.schema)
	result := v.FromAST(ast)
	if ast.Diagnostics.HasErrors() {
		return result, &UnparsableSchemaError{Diagnostics: ast.Diagnostics}
	}
	return result, nil
}

// FromAST assembles the models of an already parsed schema. ast must come
// from this visualiser's text since spans are sliced against it.
func (v *SchemaVisualiser) FromAST(ast *psl.SchemaAst) *Result {
	result := &Result{
		Schema:      v.schema,
		Models:      []schema.Model{},
		Diagnostics: ast.Diagnostics,
	}

	seen := map[string]bool{}
	for _, m := range ast.Models() {
		model, warnings := v.buildModel(m)
		if seen[m.Name] {
			warnings = append(warnings, Warning{
				Kind:    DuplicateModel,
				Model:   m.Name,
				Message: fmt.Sprintf("model %q is declared more than once", m.Name),
				Span:    model.Span,
			})
		}
		seen[m.Name] = true

		result.Models = append(result.Models, model)
		result.Warnings = append(result.Warnings, warnings...)
	}
	return result
}

func (v *SchemaVisualiser) buildModel(m *psl.Model) (schema.Model, []Warning) {
	span := convertSpan(m.Span)
	model := schema.Model{
		Name:   m.Name,
		Span:   span,
		Fields: make([]schema.Field, 0, len(m.Fields)),
	}
	if span.Valid(len(v.schema)) {
		model.Code = v.schema[span.Start:span.End]
	}

	classification, warnings := ClassifyBlockAttributes(m.Attributes)
	for i := range warnings {
		warnings[i].Model = m.Name
	}

	for _, f := range m.Fields {
		field, fieldWarnings := v.buildField(f, classification)
		for i := range fieldWarnings {
			fieldWarnings[i].Model = m.Name
			fieldWarnings[i].Field = f.Name
		}
		model.Fields = append(model.Fields, field)
		warnings = append(warnings, fieldWarnings...)
	}
	return model, warnings
}

func (v *SchemaVisualiser) buildField(f psl.Field, classification *BlockClassification) (schema.Field, []Warning) {
	dataType, modifier := ResolveFieldType(v.schema, f)
	relationship, warnings := ExtractRelationship(f.Attributes)
	flags := classification.Flags(f.Name)

	return schema.Field{
		Name:         f.Name,
		Type:         dataType,
		Arity:        convertArity(f.Arity),
		Modifier:     modifier,
		Constraints:  ExtractConstraints(f.Attributes),
		Relationship: relationship,
		IsIndexed:    flags.IsIndexed,
		IsUnique:     flags.IsUnique,
		IsID:         flags.IsID,
	}, warnings
}
