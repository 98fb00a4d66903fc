package visualise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/prismaviz/psl"
)

func blockAttributes(t *testing.T, attrs string) []psl.Attribute {
	t.Helper()
	ast := psl.Parse("model A {\n  a Int\n  b Int\n  c Int\n" + attrs + "}\n")
	require.Empty(t, ast.Diagnostics)
	return ast.Models()[0].Attributes
}

func TestClassifyBlockAttributes(t *testing.T) {
	bc, warnings := ClassifyBlockAttributes(blockAttributes(t,
		"  @@id([a, b])\n  @@unique([b])\n  @@index([c], name: \"c_idx\")\n  @@map(\"things\")\n"))
	assert.Empty(t, warnings)

	assert.Equal(t, FieldFlags{IsID: true}, bc.Flags("a"))
	assert.Equal(t, FieldFlags{IsID: true, IsUnique: true}, bc.Flags("b"))
	assert.Equal(t, FieldFlags{IsIndexed: true}, bc.Flags("c"))
	assert.Equal(t, FieldFlags{}, bc.Flags("missing"))
}

func TestClassifyBlockAttributesIgnoresNamedFields(t *testing.T) {
	bc, warnings := ClassifyBlockAttributes(blockAttributes(t, "  @@unique(fields: [a, b], name: \"ab\")\n"))
	assert.Empty(t, warnings)
	assert.Equal(t, FieldFlags{}, bc.Flags("a"))
}

func TestClassifyBlockAttributesMalformed(t *testing.T) {
	bc, warnings := ClassifyBlockAttributes(blockAttributes(t, "  @@index(a)\n  @@index([b, \"c\"])\n"))
	require.Len(t, warnings, 2)
	assert.Equal(t, MalformedAttributeArguments, warnings[0].Kind)
	assert.Equal(t, "index", warnings[0].Attribute)
	assert.Equal(t, FieldFlags{IsIndexed: true}, bc.Flags("b"))
	assert.Equal(t, FieldFlags{}, bc.Flags("c"))
}
