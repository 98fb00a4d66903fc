package visualise

import (
	"fmt"

	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/schema"
)

// ExtractRelationship reads the `fields:` and `references:` lists of a
// field's @relation attribute. Every other argument is ignored. The kind of
// the relation is never inferred.
func ExtractRelationship(attrs []psl.Attribute) (schema.Relationship, []Warning) {
	rel := schema.Relationship{Kind: schema.UnknownKind}
	var warnings []Warning

	for _, attr := range attrs {
		if attr.Name != relationAttribute {
			continue
		}
		for _, arg := range attr.Arguments {
			named, ok := arg.(psl.NamedArgument)
			if !ok || (named.Name != "fields" && named.Name != "references") {
				continue
			}
			if named.Value.Kind != psl.ArrayValue {
				warnings = append(warnings, malformed(attr,
					fmt.Sprintf("%s: expects a list of field names", named.Name), named.Span))
				continue
			}
			for _, elem := range named.Value.Elements {
				if elem.Kind != psl.ConstantValue {
					warnings = append(warnings, malformed(attr,
						fmt.Sprintf("%s: entries must be field names", named.Name), elem.Span))
					continue
				}
				if named.Name == "fields" {
					rel.OwnFields = append(rel.OwnFields, elem.Value)
				} else {
					rel.ReferencedFields = append(rel.ReferencedFields, elem.Value)
				}
			}
		}
	}
	return rel, warnings
}
