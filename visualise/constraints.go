package visualise

import (
	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/schema"
)

const relationAttribute = "relation"

// ExtractConstraints turns every field attribute except @relation into a
// Constraint, keeping declaration order. Function calls keep only their name,
// so `@default(autoincrement())` becomes default(autoincrement()). Constants
// and arrays are dropped.
func ExtractConstraints(attrs []psl.Attribute) []schema.Constraint {
	constraints := make([]schema.Constraint, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Name == relationAttribute {
			continue
		}
		c := schema.Constraint{Name: attr.Name}
		for _, arg := range attr.Arguments {
			if v, ok := constraintArgument(arg.ArgumentValue()); ok {
				c.Arguments = append(c.Arguments, v)
			}
		}
		constraints = append(constraints, c)
	}
	return constraints
}

func constraintArgument(expr psl.Expression) (schema.ArgumentValue, bool) {
	switch expr.Kind {
	case psl.NumericValue:
		return schema.ArgumentValue{Kind: schema.Number, Text: expr.Value}, true
	case psl.StringValue:
		return schema.ArgumentValue{Kind: schema.StringLiteral, Text: expr.Value}, true
	case psl.FunctionCall:
		return schema.ArgumentValue{Kind: schema.FunctionCall, Text: expr.Value + "()"}, true
	default:
		return schema.ArgumentValue{}, false
	}
}
