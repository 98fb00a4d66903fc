package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ridoystarlord/prismaviz/visualise"
)

const schemaText = `model User {
  id    Int    @id @default(autoincrement())
  posts Post[]
}

model Post {
  id       Int
  authorId Int
  author   User @relation(fields: [authorId], references: [id])

  @@unique([id])
  @@index([authorId])
}
`

func extract(t *testing.T) *visualise.Result {
	t.Helper()
	result, err := visualise.Extract(schemaText)
	require.NoError(t, err)
	return result
}

func TestTableRow(t *testing.T) {
	result := extract(t)
	user, post := result.Models[0], result.Models[1]

	assert.Equal(t, []string{"id", "Int", "id\ndefault(autoincrement())", "", "", "false"}, TableRow(user.Fields[0]))
	assert.Equal(t, []string{"posts", "Post[]", "", "", "", "false"}, TableRow(user.Fields[1]))
	assert.Equal(t, []string{"id", "Int", "unique", "", "", "false"}, TableRow(post.Fields[0]))
	assert.Equal(t, []string{"authorId", "Int", "", "", "", "true"}, TableRow(post.Fields[1]))
	assert.Equal(t, []string{"author", "User", "", "authorId", "id", "false"}, TableRow(post.Fields[2]))
}

func TestTableFormatter(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(extract(t).Models))

	out := buf.String()
	assert.Contains(t, out, "Model User")
	assert.Contains(t, out, "Model Post")
	for _, header := range tableHeader {
		assert.Contains(t, out, header)
	}
	assert.Less(t, strings.Index(out, "Model User"), strings.Index(out, "Model Post"))
}

func TestToWireUsesArrays(t *testing.T) {
	models := ToWire(extract(t).Models)
	require.Len(t, models, 2)

	posts := models[0].Fields[1]
	assert.Equal(t, "Post[]", posts.Type)
	assert.NotNil(t, posts.RelationShipFields)
	assert.NotNil(t, posts.RelationShipReferences)
	assert.NotNil(t, posts.Constraints)

	data, err := json.Marshal(posts)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "posts",
		"type": "Post[]",
		"is_index": false,
		"is_unique": false,
		"is_id": false,
		"relation_ship_fields": [],
		"relation_ship_references": [],
		"constraints": []
	}`, string(data))
}

func TestWriteJSONDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewDocument(extract(t))))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded["result"], 2)
	assert.NotContains(t, decoded, "warnings")

	models := decoded["result"].([]any)
	post := models[1].(map[string]any)
	assert.Equal(t, "Post", post["name"])
	assert.True(t, strings.HasPrefix(post["code"].(string), "model Post {"))
	author := post["fields"].([]any)[2].(map[string]any)
	assert.Equal(t, []any{"authorId"}, author["relation_ship_fields"])
}

func TestWriteYAMLDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, NewDocument(extract(t))))

	var decoded struct {
		Result []Model `yaml:"result"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Result, 2)
	assert.Equal(t, "User", decoded.Result[0].Name)
	assert.Equal(t, []string{"id", "default(autoincrement())"}, decoded.Result[0].Fields[0].Constraints)
}
