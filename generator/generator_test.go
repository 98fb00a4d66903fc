package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/prismaviz/schema"
	"github.com/ridoystarlord/prismaviz/visualise"
)

const blog = `model User {
  id      Int      @id @default(autoincrement())
  email   String   @unique
  posts   Post[]
  profile Profile?
}

model Profile {
  id     Int  @id
  userId Int  @unique
  user   User @relation(fields: [userId], references: [id])
}

model Post {
  id       Int     @id
  title    String?
  authorId Int
  author   User    @relation(fields: [authorId], references: [id])
}
`

func models(t *testing.T) []schema.Model {
	t.Helper()
	result, err := visualise.Extract(blog)
	require.NoError(t, err)
	return result.Models
}

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid(models(t))

	assert.Contains(t, out, "```mermaid\nerDiagram\n")
	assert.Contains(t, out, "    User {\n        Int id PK\n        String email UK\n    }\n")
	assert.Contains(t, out, "        String title \"?\"\n")
	assert.Contains(t, out, "    User ||--o| Profile : user\n")
	assert.Contains(t, out, "    User ||--o{ Post : author\n")
	assert.NotContains(t, out, "posts")
}

func TestGeneratePlantUML(t *testing.T) {
	out := GeneratePlantUML(models(t))

	assert.Contains(t, out, "@startuml\n")
	assert.Contains(t, out, "entity \"Post\" {\n  id : Int <<PK>>\n  title : String?\n  authorId : Int\n}\n")
	assert.Contains(t, out, "\"User\" ||--o{ \"Post\" : \"author\"\n")
	assert.Contains(t, out, "@enduml\n")
}

func TestGenerateGraphviz(t *testing.T) {
	out := GenerateGraphviz(models(t))

	assert.Contains(t, out, "digraph ERD {\n")
	assert.Contains(t, out, `  Profile [label="Profile|id: Int (PK)\luserId: Int (UK)\l"];`)
	assert.Contains(t, out, `  User -> Post [label="author"];`)
}

func TestGenerateFormats(t *testing.T) {
	for _, format := range Formats {
		out, err := Generate(format, models(t))
		require.NoError(t, err, format)
		assert.NotEmpty(t, out)
	}

	_, err := Generate("svg", models(t))
	assert.ErrorContains(t, err, "unsupported format: svg")
}

func TestUnsupportedTypesAreNotQuoted(t *testing.T) {
	result, err := visualise.Extract("model Place {\n  id  Int @id\n  loc Unsupported(\"point\")\n}\n")
	require.NoError(t, err)
	assert.Contains(t, GenerateMermaid(result.Models), "        Unsupported loc\n")
}
