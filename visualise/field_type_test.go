package visualise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/schema"
)

func TestResolveType(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		arity    schema.Arity
		suffix   string
		want     schema.DataType
		modifier string
	}{
		{"required scalar", "Int", schema.Required, " @", schema.DataType{Kind: schema.Int}, ""},
		{"list relation", "Post", schema.List, "[]", schema.DataType{Kind: schema.Relation, Name: "Post"}, "[]"},
		{"optional relation", "Post", schema.Optional, "? ", schema.DataType{Kind: schema.Relation, Name: "Post"}, "?"},
		{"optional scalar", "DateTime", schema.Optional, "?\n", schema.DataType{Kind: schema.DateTime}, "?"},
		{"bracket text not exact", "String", schema.List, "[ ", schema.DataType{Kind: schema.String}, ""},
		{"empty name", "", schema.Required, "", schema.DataType{Kind: schema.Unknown}, ""},
		{"every scalar is known", "Bytes", schema.Required, "", schema.DataType{Kind: schema.Bytes}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, modifier := ResolveType(tt.raw, tt.arity, tt.suffix)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.modifier, modifier)
		})
	}
}

func TestResolveFieldType(t *testing.T) {
	src := "model A {\n  tags  String[]\n  loc   Unsupported(\"point\")?\n  owner User\n}\n"
	ast := psl.Parse(src)
	require.Empty(t, ast.Diagnostics)
	fields := ast.Models()[0].Fields

	dt, modifier := ResolveFieldType(src, fields[0])
	assert.Equal(t, schema.DataType{Kind: schema.String}, dt)
	assert.Equal(t, "[]", modifier)

	dt, modifier = ResolveFieldType(src, fields[1])
	assert.Equal(t, schema.DataType{Kind: schema.Unsupported, Name: "point"}, dt)
	assert.Equal(t, "?", modifier)
	assert.Equal(t, `Unsupported("point")`, dt.String())

	dt, modifier = ResolveFieldType(src, fields[2])
	assert.Equal(t, schema.DataType{Kind: schema.Relation, Name: "User"}, dt)
	assert.Empty(t, modifier)
}

func TestTypeSuffixClampsToText(t *testing.T) {
	assert.Equal(t, "[", typeSuffix("Int[", psl.Span{Start: 0, End: 3}))
	assert.Equal(t, "", typeSuffix("Int", psl.Span{Start: 0, End: 3}))
	assert.Equal(t, "", typeSuffix("Int", psl.Span{Start: 0, End: 10}))
}
