package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/ridoystarlord/prismaviz/schema"
)

var tableHeader = []string{
	"Name",
	"Type",
	"Attributes_Constraints",
	"Relation_Fields",
	"Relation_References",
	"Index",
}

// TableFormatter prints one console table per model.
type TableFormatter struct {
	writer io.Writer
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

func (f *TableFormatter) Format(models []schema.Model) error {
	title := color.New(color.FgCyan, color.Bold)
	for _, model := range models {
		if _, err := title.Fprintf(f.writer, "Model %s\n", model.Name); err != nil {
			return err
		}

		table := tablewriter.NewWriter(f.writer)
		table.SetHeader(tableHeader)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetRowLine(true)
		for _, field := range model.Fields {
			table.Append(TableRow(field))
		}
		table.Render()

		if _, err := fmt.Fprintln(f.writer); err != nil {
			return err
		}
	}
	return nil
}

// TableRow renders a field as the cells of its table row. Block level id and
// unique markers are appended to the field's own constraints.
func TableRow(field schema.Field) []string {
	constraints := field.ConstraintStrings()
	if field.IsID {
		constraints = append(constraints, "id")
	}
	if field.IsUnique {
		constraints = append(constraints, "unique")
	}
	return []string{
		field.Name,
		field.TypeWithModifier(),
		strings.Join(constraints, "\n"),
		strings.Join(field.Relationship.OwnFields, "\n"),
		strings.Join(field.Relationship.ReferencedFields, "\n"),
		strconv.FormatBool(field.IsIndexed),
	}
}
