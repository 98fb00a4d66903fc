package schema

import "strings"

// Span is a half-open byte range [Start, End) into the schema text it was
// derived from. Spans from different texts must not be compared.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Equal reports whether both endpoints match exactly.
func (s Span) Equal(other Span) bool {
	return s.Start == other.Start && s.End == other.End
}

// Valid reports whether the span fits a text of length n.
func (s Span) Valid(n int) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= n
}

type Arity string

const (
	Required Arity = "required"
	Optional Arity = "optional"
	List     Arity = "list"
)

type DataTypeKind string

const (
	Int         DataTypeKind = "Int"
	BigInt      DataTypeKind = "BigInt"
	Float       DataTypeKind = "Float"
	Decimal     DataTypeKind = "Decimal"
	Boolean     DataTypeKind = "Boolean"
	String      DataTypeKind = "String"
	DateTime    DataTypeKind = "DateTime"
	Json        DataTypeKind = "Json"
	Bytes       DataTypeKind = "Bytes"
	Unsupported DataTypeKind = "Unsupported"
	Relation    DataTypeKind = "Relation"
	Unknown     DataTypeKind = "Unknown"
)

// DataType is the semantic classification of a field type. Name carries the
// native type for Unsupported and the unresolved target model for Relation.
type DataType struct {
	Kind DataTypeKind
	Name string
}

func (d DataType) IsRelation() bool { return d.Kind == Relation }

// String is the type name as written in the schema.
func (d DataType) String() string {
	switch d.Kind {
	case Relation:
		return d.Name
	case Unsupported:
		if d.Name == "" {
			return "Unsupported"
		}
		return `Unsupported("` + d.Name + `")`
	case Unknown:
		return d.Name
	default:
		return string(d.Kind)
	}
}

type ArgumentKind string

const (
	Number        ArgumentKind = "number"
	StringLiteral ArgumentKind = "string"
	ConstantIdent ArgumentKind = "constant"
	FunctionCall  ArgumentKind = "function"
	ArrayOf       ArgumentKind = "array"
)

type ArgumentValue struct {
	Kind     ArgumentKind
	Text     string
	Elements []ArgumentValue
}

func (v ArgumentValue) String() string {
	if v.Kind != ArrayOf {
		return v.Text
	}
	parts := make([]string, 0, len(v.Elements))
	for _, e := range v.Elements {
		parts = append(parts, e.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Constraint is a non-relation field attribute, e.g. `default(autoincrement())`.
type Constraint struct {
	Name      string
	Arguments []ArgumentValue
}

func (c Constraint) String() string {
	if len(c.Arguments) == 0 {
		return c.Name
	}
	args := make([]string, 0, len(c.Arguments))
	for _, a := range c.Arguments {
		args = append(args, a.String())
	}
	return c.Name + "(" + strings.Join(args, ",") + ")"
}

type RelationKind string

const (
	OneToOne     RelationKind = "one-to-one"
	OneToMany    RelationKind = "one-to-many"
	ManyToMany   RelationKind = "many-to-many"
	SelfRelation RelationKind = "self-relation"
	UnknownKind  RelationKind = "unknown"
)

// Relationship is the fields/references pairing of a `@relation` attribute.
// Kind is not inferred and stays UnknownKind.
type Relationship struct {
	OwnFields        []string
	ReferencedFields []string
	Kind             RelationKind
}

func (r Relationship) IsEmpty() bool {
	return len(r.OwnFields) == 0 && len(r.ReferencedFields) == 0
}

type Field struct {
	Name         string
	Type         DataType
	Arity        Arity
	Modifier     string
	Constraints  []Constraint
	Relationship Relationship
	// Block-level classification only. Field-level @id/@unique live in
	// Constraints.
	IsIndexed bool
	IsUnique  bool
	IsID      bool
}

// TypeWithModifier is the type name followed by its rendered modifier.
func (f Field) TypeWithModifier() string {
	return f.Type.String() + f.Modifier
}

func (f Field) ConstraintStrings() []string {
	out := make([]string, 0, len(f.Constraints))
	for _, c := range f.Constraints {
		out = append(out, c.String())
	}
	return out
}

type Model struct {
	ID     string
	Name   string
	Fields []Field
	Span   Span
	// Code is the schema text at Span, verbatim.
	Code string
}

// Fragment is the highlighted markup of one model.
type Fragment struct {
	HTML string `json:"html"`
	Span Span   `json:"span"`
}
