package formatter

import (
	"github.com/ridoystarlord/prismaviz/schema"
)

// Model is the transport shape of a model. List valued fields are always
// arrays, never newline joined strings.
type Model struct {
	ID     string      `json:"id,omitempty" yaml:"id,omitempty"`
	Name   string      `json:"name" yaml:"name"`
	Fields []Field     `json:"fields" yaml:"fields"`
	Code   string      `json:"code" yaml:"code"`
	Span   schema.Span `json:"span" yaml:"span"`
}

type Field struct {
	Name                   string   `json:"name" yaml:"name"`
	Type                   string   `json:"type" yaml:"type"`
	IsIndex                bool     `json:"is_index" yaml:"is_index"`
	IsUnique               bool     `json:"is_unique" yaml:"is_unique"`
	IsID                   bool     `json:"is_id" yaml:"is_id"`
	RelationShipFields     []string `json:"relation_ship_fields" yaml:"relation_ship_fields"`
	RelationShipReferences []string `json:"relation_ship_references" yaml:"relation_ship_references"`
	Constraints            []string `json:"constraints" yaml:"constraints"`
}

// ToWire converts extracted models to their transport shape.
func ToWire(models []schema.Model) []Model {
	out := make([]Model, 0, len(models))
	for _, m := range models {
		wm := Model{
			ID:     m.ID,
			Name:   m.Name,
			Code:   m.Code,
			Span:   m.Span,
			Fields: make([]Field, 0, len(m.Fields)),
		}
		for _, f := range m.Fields {
			wm.Fields = append(wm.Fields, Field{
				Name:                   f.Name,
				Type:                   f.TypeWithModifier(),
				IsIndex:                f.IsIndexed,
				IsUnique:               f.IsUnique,
				IsID:                   f.IsID,
				RelationShipFields:     nonNil(f.Relationship.OwnFields),
				RelationShipReferences: nonNil(f.Relationship.ReferencedFields),
				Constraints:            f.ConstraintStrings(),
			})
		}
		out = append(out, wm)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
