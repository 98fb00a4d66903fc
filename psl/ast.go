package psl

// Span is a half-open byte range [Start, End) into the parsed source.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Arity is the multiplicity marker written after a field type.
type Arity int

const (
	Required Arity = iota
	Optional
	List
)

func (a Arity) String() string {
	switch a {
	case Optional:
		return "optional"
	case List:
		return "list"
	default:
		return "required"
	}
}

type ExpressionKind int

const (
	NumericValue ExpressionKind = iota
	StringValue
	ConstantValue
	FunctionCall
	ArrayValue
)

// Expression is an attribute or property value.
//
// Value holds the literal text for numbers, the unescaped contents for strings,
// the identifier for constants and the function name for calls. Arguments is
// only set for function calls, Elements only for arrays.
type Expression struct {
	Kind      ExpressionKind
	Value     string
	Arguments []Argument
	Elements  []Expression
	Span      Span
}

// Argument is one entry of an attribute or function argument list. It is
// either a NamedArgument or a BareArgument.
type Argument interface {
	ArgumentValue() Expression
	ArgumentSpan() Span
}

// NamedArgument is written `name: value`.
type NamedArgument struct {
	Name  string
	Value Expression
	Span  Span
}

func (a NamedArgument) ArgumentValue() Expression { return a.Value }
func (a NamedArgument) ArgumentSpan() Span        { return a.Span }

// BareArgument is a positional argument.
type BareArgument struct {
	Value Expression
	Span  Span
}

func (a BareArgument) ArgumentValue() Expression { return a.Value }
func (a BareArgument) ArgumentSpan() Span        { return a.Span }

// Attribute is a field attribute (`@id`) or a block attribute (`@@index`).
// Name never includes the leading at signs; namespaced attributes keep their
// dots (`db.VarChar`).
type Attribute struct {
	Name      string
	Arguments []Argument
	Span      Span
}

// FieldType is the raw type token of a field. For `Unsupported("x")` Name is
// "Unsupported" and Native holds "x". Span covers the type name only.
type FieldType struct {
	Name   string
	Native string
	Span   Span
}

type Field struct {
	Name          string
	Type          FieldType
	Arity         Arity
	Attributes    []Attribute
	Documentation string
	Span          Span
}

// Top is a top level declaration of a schema.
type Top interface {
	TopType() string
	TopName() string
	TopSpan() Span
}

// Model is a `model` or `view` block.
type Model struct {
	Name          string
	Fields        []Field
	Attributes    []Attribute
	Documentation string
	IsView        bool
	Span          Span
}

func (m *Model) TopType() string {
	if m.IsView {
		return "view"
	}
	return "model"
}
func (m *Model) TopName() string { return m.Name }
func (m *Model) TopSpan() Span   { return m.Span }

// CompositeType is a `type` block.
type CompositeType struct {
	Name          string
	Fields        []Field
	Documentation string
	Span          Span
}

func (c *CompositeType) TopType() string { return "type" }
func (c *CompositeType) TopName() string { return c.Name }
func (c *CompositeType) TopSpan() Span   { return c.Span }

type EnumValue struct {
	Name       string
	Attributes []Attribute
	Span       Span
}

type Enum struct {
	Name          string
	Values        []EnumValue
	Attributes    []Attribute
	Documentation string
	Span          Span
}

func (e *Enum) TopType() string { return "enum" }
func (e *Enum) TopName() string { return e.Name }
func (e *Enum) TopSpan() Span   { return e.Span }

// Property is a `key = value` line of a datasource or generator block.
type Property struct {
	Name  string
	Value Expression
	Span  Span
}

// ConfigBlock is a `datasource` or `generator` block.
type ConfigBlock struct {
	Kind       string
	Name       string
	Properties []Property
	Span       Span
}

func (c *ConfigBlock) TopType() string { return c.Kind }
func (c *ConfigBlock) TopName() string { return c.Name }
func (c *ConfigBlock) TopSpan() Span   { return c.Span }

// Property returns the named property of the block.
func (c *ConfigBlock) Property(name string) (Property, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// SchemaAst is the result of parsing one schema text.
type SchemaAst struct {
	Tops        []Top
	Diagnostics Diagnostics
}

// Models returns the `model` declarations in document order. Views are not
// included.
func (s *SchemaAst) Models() []*Model {
	var models []*Model
	for _, top := range s.Tops {
		if m, ok := top.(*Model); ok && !m.IsView {
			models = append(models, m)
		}
	}
	return models
}

func (s *SchemaAst) Datasources() []*ConfigBlock {
	var blocks []*ConfigBlock
	for _, top := range s.Tops {
		if c, ok := top.(*ConfigBlock); ok && c.Kind == "datasource" {
			blocks = append(blocks, c)
		}
	}
	return blocks
}
