package visualise

import (
	"github.com/ridoystarlord/prismaviz/psl"
)

type blockTag int

const (
	tagID blockTag = iota
	tagUnique
	tagIndex
)

var blockAttributeTags = map[string]blockTag{
	"id":     tagID,
	"unique": tagUnique,
	"index":  tagIndex,
}

// FieldFlags is the block-level classification of one field name.
type FieldFlags struct {
	IsID      bool
	IsUnique  bool
	IsIndexed bool
}

// BlockClassification indexes the @@id, @@unique and @@index attributes of
// one model by field name. It is built once per model and only read after.
type BlockClassification struct {
	flags map[string]FieldFlags
}

// ClassifyBlockAttributes reads the unnamed field list argument of each
// @@id, @@unique and @@index attribute. Named arguments such as `name:` or
// `map:` do not take part.
func ClassifyBlockAttributes(attrs []psl.Attribute) (*BlockClassification, []Warning) {
	bc := &BlockClassification{flags: map[string]FieldFlags{}}
	var warnings []Warning

	for _, attr := range attrs {
		tag, ok := blockAttributeTags[attr.Name]
		if !ok {
			continue
		}
		for _, arg := range attr.Arguments {
			bare, ok := arg.(psl.BareArgument)
			if !ok {
				continue
			}
			if bare.Value.Kind != psl.ArrayValue {
				warnings = append(warnings, malformed(attr, "expects a list of field names", bare.Span))
				continue
			}
			for _, elem := range bare.Value.Elements {
				if elem.Kind != psl.ConstantValue {
					warnings = append(warnings, malformed(attr, "entries must be plain field names", elem.Span))
					continue
				}
				bc.mark(elem.Value, tag)
			}
		}
	}
	return bc, warnings
}

func (bc *BlockClassification) mark(field string, tag blockTag) {
	f := bc.flags[field]
	switch tag {
	case tagID:
		f.IsID = true
	case tagUnique:
		f.IsUnique = true
	case tagIndex:
		f.IsIndexed = true
	}
	bc.flags[field] = f
}

// Flags returns the classification of a field name; unknown names are all false.
func (bc *BlockClassification) Flags(field string) FieldFlags {
	return bc.flags[field]
}
