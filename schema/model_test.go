package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	s := Span{Start: 3, End: 10}
	assert.True(t, s.Equal(Span{Start: 3, End: 10}))
	assert.False(t, s.Equal(Span{Start: 3, End: 11}))

	assert.True(t, s.Valid(10))
	assert.False(t, s.Valid(9))
	assert.False(t, Span{Start: 5, End: 4}.Valid(10))
	assert.False(t, Span{Start: -1, End: 4}.Valid(10))
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dt   DataType
		want string
	}{
		{DataType{Kind: Int}, "Int"},
		{DataType{Kind: Relation, Name: "Post"}, "Post"},
		{DataType{Kind: Unsupported, Name: "circle"}, `Unsupported("circle")`},
		{DataType{Kind: Unsupported}, "Unsupported"},
		{DataType{Kind: Unknown}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dt.String())
	}
}

func TestConstraintString(t *testing.T) {
	assert.Equal(t, "id", Constraint{Name: "id"}.String())
	assert.Equal(t, "default(autoincrement())", Constraint{
		Name:      "default",
		Arguments: []ArgumentValue{{Kind: FunctionCall, Text: "autoincrement()"}},
	}.String())
	assert.Equal(t, "db.Decimal(10,2)", Constraint{
		Name:      "db.Decimal",
		Arguments: []ArgumentValue{{Kind: Number, Text: "10"}, {Kind: Number, Text: "2"}},
	}.String())
	assert.Equal(t, "x([a,b])", Constraint{
		Name: "x",
		Arguments: []ArgumentValue{{Kind: ArrayOf, Elements: []ArgumentValue{
			{Kind: ConstantIdent, Text: "a"},
			{Kind: ConstantIdent, Text: "b"},
		}}},
	}.String())
}

func TestFieldTypeWithModifier(t *testing.T) {
	f := Field{Type: DataType{Kind: Relation, Name: "Post"}, Modifier: "[]"}
	assert.Equal(t, "Post[]", f.TypeWithModifier())
	assert.Empty(t, Field{}.ConstraintStrings())
}
