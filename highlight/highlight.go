// Package highlight renders each model of a schema as span-tagged HTML so an
// editor or diagram can look up the markup of the declaration under a cursor.
package highlight

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/schema"
	"github.com/ridoystarlord/prismaviz/visualise"
)

// ErrModelNotFound is returned by Lookup when no model has the requested span.
var ErrModelNotFound = errors.New("model not found")

// Generate renders one fragment per model, in document order. The output only
// depends on text. When the parser reports errors the fragments that could be
// built are returned with a *visualise.UnparsableSchemaError.
func Generate(text string) ([]schema.Fragment, error) {
	ast := psl.Parse(text)

	fragments := make([]schema.Fragment, 0, len(ast.Models()))
	for _, m := range ast.Models() {
		var sb strings.Builder
		if err := fragmentTemplate.ExecuteTemplate(&sb, "model", newModelView(text, m)); err != nil {
			return nil, err
		}
		fragments = append(fragments, schema.Fragment{
			HTML: sb.String(),
			Span: schema.Span{Start: m.Span.Start, End: m.Span.End},
		})
	}

	if ast.Diagnostics.HasErrors() {
		return fragments, &visualise.UnparsableSchemaError{Diagnostics: ast.Diagnostics}
	}
	return fragments, nil
}

// Lookup regenerates every fragment of text and returns the one whose span is
// exactly span.
func Lookup(text string, span schema.Span) (schema.Fragment, error) {
	fragments, err := Generate(text)
	if err != nil {
		return schema.Fragment{}, err
	}
	for _, f := range fragments {
		if f.Span.Equal(span) {
			return f, nil
		}
	}
	return schema.Fragment{}, ErrModelNotFound
}

func newModelView(text string, m *psl.Model) modelView {
	view := modelView{Name: m.Name}
	for _, f := range m.Fields {
		dataType, modifier := visualise.ResolveFieldType(text, f)
		fv := fieldView{
			Name:       f.Name,
			Type:       dataType.String(),
			Modifier:   modifier,
			Relational: dataType.IsRelation(),
		}
		for _, attr := range f.Attributes {
			fv.Attributes = append(fv.Attributes, fieldAttributeView(attr))
		}
		view.Fields = append(view.Fields, fv)
	}
	for _, attr := range m.Attributes {
		view.BlockAttributes = append(view.BlockAttributes, blockAttributeView(attr))
	}
	return view
}

func fieldAttributeView(attr psl.Attribute) attributeView {
	if attr.Name == "relation" {
		return relationView(attr)
	}
	view := attributeView{Name: "@" + attr.Name}
	constraints := visualise.ExtractConstraints([]psl.Attribute{attr})
	for _, arg := range constraints[0].Arguments {
		view.Arguments = append(view.Arguments, argumentView{Value: arg.String()})
	}
	return view
}

func relationView(attr psl.Attribute) attributeView {
	view := attributeView{Name: "@relation"}
	rel, _ := visualise.ExtractRelationship([]psl.Attribute{attr})
	if len(rel.OwnFields) > 0 {
		view.Arguments = append(view.Arguments, argumentView{
			Label:     "fields",
			Class:     "argument-relational-fields",
			ItemClass: "relational-field-list-item argument-list-item",
			IsList:    true,
			Items:     rel.OwnFields,
		})
	}
	if len(rel.ReferencedFields) > 0 {
		view.Arguments = append(view.Arguments, argumentView{
			Label:     "references",
			Class:     "argument-relational-references",
			ItemClass: "relational-field-list-item argument-list-item",
			IsList:    true,
			Items:     rel.ReferencedFields,
		})
	}
	return view
}

func blockAttributeView(attr psl.Attribute) attributeView {
	view := attributeView{Name: "@@" + attr.Name}
	for _, arg := range attr.Arguments {
		av := argumentView{}
		if named, ok := arg.(psl.NamedArgument); ok {
			av.Label = named.Name
		}
		value := arg.ArgumentValue()
		if value.Kind == psl.ArrayValue {
			av.IsList = true
			av.Class = "argument-list"
			av.ItemClass = "argument-list-item"
			for _, elem := range value.Elements {
				av.Items = append(av.Items, expressionText(elem))
			}
		} else {
			av.Value = expressionText(value)
		}
		view.Arguments = append(view.Arguments, av)
	}
	return view
}

// expressionText writes an expression back the way it appears in a schema.
func expressionText(expr psl.Expression) string {
	switch expr.Kind {
	case psl.StringValue:
		return strconv.Quote(expr.Value)
	case psl.ArrayValue:
		parts := make([]string, 0, len(expr.Elements))
		for _, e := range expr.Elements {
			parts = append(parts, expressionText(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case psl.FunctionCall:
		parts := make([]string, 0, len(expr.Arguments))
		for _, a := range expr.Arguments {
			text := expressionText(a.ArgumentValue())
			if named, ok := a.(psl.NamedArgument); ok {
				text = named.Name + ": " + text
			}
			parts = append(parts, text)
		}
		return expr.Value + "(" + strings.Join(parts, ", ") + ")"
	default:
		return expr.Value
	}
}
