package visualise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/schema"
)

func fieldAttributes(t *testing.T, field string) []psl.Attribute {
	t.Helper()
	ast := psl.Parse("model A {\n  " + field + "\n}\n")
	require.Empty(t, ast.Diagnostics)
	return ast.Models()[0].Fields[0].Attributes
}

func TestExtractConstraints(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{"no attributes", "id Int", []string{}},
		{"function default", "id Int @id @default(autoincrement())", []string{"id", "default(autoincrement())"}},
		{"number and string", `name String @db.VarChar(255) @map("full_name")`, []string{"db.VarChar(255)", "map(full_name)"}},
		{"constant dropped", "role Role @default(USER)", []string{"default"}},
		{"relation skipped", "author User @relation(fields: [authorId], references: [id]) @ignore", []string{"ignore"}},
		{"function args discarded", `id String @default(dbgenerated("gen_random_uuid()"))`, []string{"default(dbgenerated())"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraints := ExtractConstraints(fieldAttributes(t, tt.field))
			got := make([]string, 0, len(constraints))
			for _, c := range constraints {
				got = append(got, c.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractConstraintsArgumentKinds(t *testing.T) {
	constraints := ExtractConstraints(fieldAttributes(t, `price Decimal @default(9.5) @map("p") @updatedAt`))
	require.Len(t, constraints, 3)

	assert.Equal(t, []schema.ArgumentValue{{Kind: schema.Number, Text: "9.5"}}, constraints[0].Arguments)
	assert.Equal(t, []schema.ArgumentValue{{Kind: schema.StringLiteral, Text: "p"}}, constraints[1].Arguments)
	assert.Equal(t, schema.Constraint{Name: "updatedAt"}, constraints[2])
}
