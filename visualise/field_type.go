package visualise

import (
	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/schema"
)

var scalarTypes = map[string]schema.DataTypeKind{
	"Int":         schema.Int,
	"BigInt":      schema.BigInt,
	"Float":       schema.Float,
	"Decimal":     schema.Decimal,
	"Boolean":     schema.Boolean,
	"String":      schema.String,
	"DateTime":    schema.DateTime,
	"Json":        schema.Json,
	"Bytes":       schema.Bytes,
	"Unsupported": schema.Unsupported,
}

// ResolveType classifies a raw type name. Names outside the scalar set are
// relations to a model of that name; the target is not checked. suffix is the
// source text right after the type name: only an exact "[]" yields the list
// modifier, anything else is dropped, and optional arity renders "?".
func ResolveType(rawName string, arity schema.Arity, suffix string) (schema.DataType, string) {
	modifier := ""
	if suffix == "[]" {
		modifier = "[]"
	} else if arity == schema.Optional {
		modifier = "?"
	}

	if rawName == "" {
		return schema.DataType{Kind: schema.Unknown}, modifier
	}
	if kind, ok := scalarTypes[rawName]; ok {
		return schema.DataType{Kind: kind}, modifier
	}
	return schema.DataType{Kind: schema.Relation, Name: rawName}, modifier
}

// ResolveFieldType resolves the type of a parsed field, reading the modifier
// suffix from src, the text the field was parsed from.
func ResolveFieldType(src string, field psl.Field) (schema.DataType, string) {
	arity := convertArity(field.Arity)
	if field.Type.Native != "" {
		dt, modifier := ResolveType(field.Type.Name, arity, "")
		dt.Name = field.Type.Native
		return dt, modifier
	}
	return ResolveType(field.Type.Name, arity, typeSuffix(src, field.Type.Span))
}

func typeSuffix(src string, span psl.Span) string {
	if span.End <= span.Start || span.End > len(src) {
		return ""
	}
	end := span.End + 2
	if end > len(src) {
		end = len(src)
	}
	return src[span.End:end]
}

func convertArity(a psl.Arity) schema.Arity {
	switch a {
	case psl.Optional:
		return schema.Optional
	case psl.List:
		return schema.List
	default:
		return schema.Required
	}
}

func convertSpan(s psl.Span) schema.Span {
	return schema.Span{Start: s.Start, End: s.End}
}
