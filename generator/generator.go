package generator

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/prismaviz/schema"
)

// Formats lists the diagram formats Generate accepts.
var Formats = []string{"mermaid", "plantuml", "graphviz"}

// edge is one relation, drawn from the referenced model to the model that
// holds the foreign key fields.
type edge struct {
	From  string
	To    string
	Label string
	One   bool
}

// Generate renders an ERD of models in the given format.
func Generate(format string, models []schema.Model) (string, error) {
	switch format {
	case "mermaid":
		return GenerateMermaid(models), nil
	case "plantuml":
		return GeneratePlantUML(models), nil
	case "graphviz":
		return GenerateGraphviz(models), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(Formats, ", "))
	}
}

func GenerateMermaid(models []schema.Model) string {
	var content strings.Builder

	content.WriteString("```mermaid\nerDiagram\n")
	for _, model := range models {
		content.WriteString(fmt.Sprintf("    %s {\n", model.Name))
		for _, field := range scalarFields(model) {
			line := fmt.Sprintf("        %s %s", diagramType(field), field.Name)
			if keys := fieldKeys(field); len(keys) > 0 {
				line += " " + strings.Join(keys, ",")
			}
			if field.Modifier != "" {
				line += fmt.Sprintf(" \"%s\"", field.Modifier)
			}
			content.WriteString(line + "\n")
		}
		content.WriteString("    }\n")
	}

	for _, e := range edges(models) {
		cardinality := "||--o{"
		if e.One {
			cardinality = "||--o|"
		}
		content.WriteString(fmt.Sprintf("    %s %s %s : %s\n", e.From, cardinality, e.To, e.Label))
	}

	content.WriteString("```\n")
	return content.String()
}

func GeneratePlantUML(models []schema.Model) string {
	var content strings.Builder

	content.WriteString("@startuml\n")
	content.WriteString("!theme plain\n")
	content.WriteString("skinparam linetype ortho\n\n")

	for _, model := range models {
		content.WriteString(fmt.Sprintf("entity \"%s\" {\n", model.Name))
		for _, field := range scalarFields(model) {
			line := fmt.Sprintf("  %s : %s%s", field.Name, diagramType(field), field.Modifier)
			for _, key := range fieldKeys(field) {
				line += fmt.Sprintf(" <<%s>>", key)
			}
			content.WriteString(line + "\n")
		}
		content.WriteString("}\n\n")
	}

	for _, e := range edges(models) {
		cardinality := "||--o{"
		if e.One {
			cardinality = "||--o|"
		}
		content.WriteString(fmt.Sprintf("\"%s\" %s \"%s\" : \"%s\"\n", e.From, cardinality, e.To, e.Label))
	}

	content.WriteString("@enduml\n")
	return content.String()
}

func GenerateGraphviz(models []schema.Model) string {
	var content strings.Builder

	content.WriteString("digraph ERD {\n")
	content.WriteString("  rankdir=LR;\n")
	content.WriteString("  node [shape=record];\n\n")

	for _, model := range models {
		var fields []string
		for _, field := range scalarFields(model) {
			line := fmt.Sprintf("%s: %s%s", field.Name, diagramType(field), field.Modifier)
			for _, key := range fieldKeys(field) {
				line += fmt.Sprintf(" (%s)", key)
			}
			fields = append(fields, escapeRecord(line))
		}
		content.WriteString(fmt.Sprintf("  %s [label=\"%s|%s\\l\"];\n", model.Name, model.Name, strings.Join(fields, "\\l")))
	}

	for _, e := range edges(models) {
		content.WriteString(fmt.Sprintf("  %s -> %s [label=\"%s\"];\n", e.From, e.To, e.Label))
	}

	content.WriteString("}\n")
	return content.String()
}

func scalarFields(model schema.Model) []schema.Field {
	fields := make([]schema.Field, 0, len(model.Fields))
	for _, f := range model.Fields {
		if !f.Type.IsRelation() {
			fields = append(fields, f)
		}
	}
	return fields
}

// diagramType drops the native type name of Unsupported fields, which
// diagram syntaxes cannot quote.
func diagramType(field schema.Field) string {
	if field.Type.Kind == schema.Unsupported || field.Type.Kind == schema.Unknown {
		return string(field.Type.Kind)
	}
	return field.Type.String()
}

func fieldKeys(field schema.Field) []string {
	var keys []string
	if field.IsID || hasConstraint(field, "id") {
		keys = append(keys, "PK")
	}
	if field.IsUnique || hasConstraint(field, "unique") {
		keys = append(keys, "UK")
	}
	return keys
}

func hasConstraint(field schema.Field, name string) bool {
	for _, c := range field.Constraints {
		if c.Name == name {
			return true
		}
	}
	return false
}

// edges collects the owning side of every relation. The back relation field
// on the other model carries no fields and is skipped.
func edges(models []schema.Model) []edge {
	var out []edge
	for _, model := range models {
		byName := make(map[string]schema.Field, len(model.Fields))
		for _, f := range model.Fields {
			byName[f.Name] = f
		}
		for _, f := range model.Fields {
			if !f.Type.IsRelation() || len(f.Relationship.OwnFields) == 0 {
				continue
			}
			one := true
			for _, name := range f.Relationship.OwnFields {
				own, ok := byName[name]
				if !ok || !(own.IsUnique || own.IsID || hasConstraint(own, "unique") || hasConstraint(own, "id")) {
					one = false
				}
			}
			out = append(out, edge{
				From:  f.Type.Name,
				To:    model.Name,
				Label: f.Name,
				One:   one,
			})
		}
	}
	return out
}

var recordEscaper = strings.NewReplacer(`"`, `\"`, "{", `\{`, "}", `\}`, "|", `\|`, "<", `\<`, ">", `\>`)

func escapeRecord(s string) string {
	return recordEscaper.Replace(s)
}
