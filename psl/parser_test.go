package psl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blogSchema = `datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

/// A registered user
model User {
  id    Int     @id @default(autoincrement())
  email String  @unique @db.VarChar(255)
  name  String?
  posts Post[]
}

model Post {
  id       Int  @id
  authorId Int
  author   User @relation(fields: [authorId], references: [id], onDelete: Cascade)

  @@index([authorId], map: "post_author")
}
`

func TestParseBlogSchema(t *testing.T) {
	ast := Parse(blogSchema)
	require.Empty(t, ast.Diagnostics)
	require.Len(t, ast.Tops, 3)

	models := ast.Models()
	require.Len(t, models, 2)

	user := models[0]
	assert.Equal(t, "User", user.Name)
	assert.Equal(t, "A registered user", user.Documentation)
	require.Len(t, user.Fields, 4)

	id := user.Fields[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "Int", id.Type.Name)
	assert.Equal(t, "Int", blogSchema[id.Type.Span.Start:id.Type.Span.End])
	assert.Equal(t, Required, id.Arity)
	require.Len(t, id.Attributes, 2)
	assert.Equal(t, "id", id.Attributes[0].Name)
	assert.Equal(t, "default", id.Attributes[1].Name)
	def := id.Attributes[1].Arguments[0].ArgumentValue()
	assert.Equal(t, FunctionCall, def.Kind)
	assert.Equal(t, "autoincrement", def.Value)

	email := user.Fields[1]
	require.Len(t, email.Attributes, 2)
	assert.Equal(t, "db.VarChar", email.Attributes[1].Name)
	arg := email.Attributes[1].Arguments[0]
	assert.IsType(t, BareArgument{}, arg)
	assert.Equal(t, NumericValue, arg.ArgumentValue().Kind)
	assert.Equal(t, "255", arg.ArgumentValue().Value)

	assert.Equal(t, Optional, user.Fields[2].Arity)
	assert.Equal(t, List, user.Fields[3].Arity)
	assert.Equal(t, "Post", user.Fields[3].Type.Name)

	code := blogSchema[user.Span.Start:user.Span.End]
	assert.True(t, strings.HasPrefix(code, "model User {"))
	assert.True(t, strings.HasSuffix(code, "}"))
}

func TestParseRelationAndBlockAttributes(t *testing.T) {
	ast := Parse(blogSchema)
	post := ast.Models()[1]

	relation := post.Fields[2].Attributes[0]
	assert.Equal(t, "relation", relation.Name)
	require.Len(t, relation.Arguments, 3)

	fields, ok := relation.Arguments[0].(NamedArgument)
	require.True(t, ok)
	assert.Equal(t, "fields", fields.Name)
	assert.Equal(t, ArrayValue, fields.Value.Kind)
	require.Len(t, fields.Value.Elements, 1)
	assert.Equal(t, "authorId", fields.Value.Elements[0].Value)

	onDelete := relation.Arguments[2].(NamedArgument)
	assert.Equal(t, ConstantValue, onDelete.Value.Kind)
	assert.Equal(t, "Cascade", onDelete.Value.Value)

	require.Len(t, post.Attributes, 1)
	index := post.Attributes[0]
	assert.Equal(t, "index", index.Name)
	require.Len(t, index.Arguments, 2)
	assert.IsType(t, BareArgument{}, index.Arguments[0])
	named := index.Arguments[1].(NamedArgument)
	assert.Equal(t, "map", named.Name)
	assert.Equal(t, StringValue, named.Value.Kind)
	assert.Equal(t, "post_author", named.Value.Value)
}

func TestParseDatasource(t *testing.T) {
	ast := Parse(blogSchema)
	sources := ast.Datasources()
	require.Len(t, sources, 1)
	assert.Equal(t, "db", sources[0].Name)

	provider, ok := sources[0].Property("provider")
	require.True(t, ok)
	assert.Equal(t, "postgresql", provider.Value.Value)

	url, ok := sources[0].Property("url")
	require.True(t, ok)
	assert.Equal(t, FunctionCall, url.Value.Kind)
	assert.Equal(t, "env", url.Value.Value)
	require.Len(t, url.Value.Arguments, 1)
	assert.Equal(t, "DATABASE_URL", url.Value.Arguments[0].ArgumentValue().Value)

	_, ok = sources[0].Property("shadowDatabaseUrl")
	assert.False(t, ok)
}

func TestParseOtherDeclarations(t *testing.T) {
	src := `enum Role {
  USER
  ADMIN @map("admin")
}

type Address {
  street String
}

view UserInfo {
  id Int @unique
}

model Place {
  id       Int                     @id
  location Unsupported("circle")?
  address  Address
}
`
	ast := Parse(src)
	require.Empty(t, ast.Diagnostics)
	require.Len(t, ast.Tops, 4)

	assert.Equal(t, "enum", ast.Tops[0].TopType())
	enum := ast.Tops[0].(*Enum)
	require.Len(t, enum.Values, 2)
	assert.Equal(t, "ADMIN", enum.Values[1].Name)
	assert.Equal(t, "map", enum.Values[1].Attributes[0].Name)

	assert.Equal(t, "type", ast.Tops[1].TopType())
	assert.Equal(t, "view", ast.Tops[2].TopType())

	models := ast.Models()
	require.Len(t, models, 1, "views are not models")
	location := models[0].Fields[1]
	assert.Equal(t, "Unsupported", location.Type.Name)
	assert.Equal(t, "circle", location.Type.Native)
	assert.Equal(t, Optional, location.Arity)
}

func TestParseRecoversFromErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		models  []string
		message string
	}{
		{
			name:    "unknown keyword",
			src:     "foo bar\nmodel A {\n  id Int\n}\n",
			models:  []string{"A"},
			message: "does not start with any known Prisma schema keyword",
		},
		{
			name:    "field without type",
			src:     "model A {\n  id\n  name String\n}\n",
			models:  []string{"A"},
			message: "missing a name or a type",
		},
		{
			name:    "optional list",
			src:     "model A {\n  tags String[]?\n}\n",
			models:  []string{"A"},
			message: "Optional lists are not supported.",
		},
		{
			name:    "unterminated string",
			src:     "model A {\n  id Int @default(\"x)\n}\nmodel B {\n  id Int\n}\n",
			models:  []string{"A", "B"},
			message: "Unterminated string literal.",
		},
		{
			name:    "missing name",
			src:     "model {\n}\nmodel B {\n  id Int\n}\n",
			models:  []string{"B"},
			message: "must have a name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ast := Parse(tt.src)
			require.True(t, ast.Diagnostics.HasErrors())
			assert.Contains(t, ast.Diagnostics.Errors()[0].Message, tt.message)

			var names []string
			for _, m := range ast.Models() {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.models, names)
		})
	}
}

func TestParseMissingClosingBrace(t *testing.T) {
	src := "model A {\n  id Int\n"
	ast := Parse(src)

	require.True(t, ast.Diagnostics.HasErrors())
	require.Len(t, ast.Models(), 1)
	assert.Equal(t, len(src), ast.Models()[0].Span.End)
}

func TestParseFieldWithoutTypeKeepsEmptyType(t *testing.T) {
	ast := Parse("model A {\n  id\n}\n")
	fields := ast.Models()[0].Fields
	require.Len(t, fields, 1)
	assert.Equal(t, "id", fields[0].Name)
	assert.Empty(t, fields[0].Type.Name)
}

func TestParseMultilineArguments(t *testing.T) {
	src := `model A {
  id Int
  b  Int

  @@unique(
    [id, b],
  )
}
`
	ast := Parse(src)
	require.Empty(t, ast.Diagnostics)
	attr := ast.Models()[0].Attributes[0]
	assert.Equal(t, "unique", attr.Name)
	require.Len(t, attr.Arguments, 1)
	assert.Len(t, attr.Arguments[0].ArgumentValue().Elements, 2)
}

func TestCommentsAreIgnored(t *testing.T) {
	src := "// leading comment\nmodel A { // trailing\n  id Int // why\n}\n"
	ast := Parse(src)
	require.Empty(t, ast.Diagnostics)
	require.Len(t, ast.Models(), 1)
	assert.Len(t, ast.Models()[0].Fields, 1)
}

func TestLineColumn(t *testing.T) {
	src := "ab\ncd\nef"
	tests := []struct {
		offset int
		line   int
		col    int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{7, 3, 2},
		{100, 3, 3},
	}
	for _, tt := range tests {
		line, col := LineColumn(src, tt.offset)
		assert.Equal(t, tt.line, line, "offset %d", tt.offset)
		assert.Equal(t, tt.col, col, "offset %d", tt.offset)
	}
}

func TestParseDuplicateProperty(t *testing.T) {
	ast := Parse("generator client {\n  provider = \"prisma-client-js\"\n  provider = \"other\"\n}\n")
	assert.False(t, ast.Diagnostics.HasErrors())
	require.Len(t, ast.Diagnostics.Warnings(), 1)

	block := ast.Tops[0].(*ConfigBlock)
	provider, ok := block.Property("provider")
	require.True(t, ok)
	assert.Equal(t, "prisma-client-js", provider.Value.Value)
}
