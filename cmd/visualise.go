package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ridoystarlord/prismaviz/formatter"
	"github.com/ridoystarlord/prismaviz/loader"
	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/visualise"
)

func visualiseFile(path, format string) error {
	result, err := loader.LoadModelsFromFile(path)
	if err != nil {
		var parseErr *visualise.UnparsableSchemaError
		if errors.As(err, &parseErr) {
			printDiagnostics(result.Schema, parseErr.Diagnostics.Errors())
		}
		return fmt.Errorf("failed to load schema: %w", err)
	}

	switch format {
	case "table", "":
		if err := formatter.NewTableFormatter(os.Stdout).Format(result.Models); err != nil {
			return err
		}
		printWarnings(result.Warnings)
		return nil
	case "json":
		return formatter.WriteJSON(os.Stdout, formatter.NewDocument(result))
	case "yaml":
		return formatter.WriteYAML(os.Stdout, formatter.NewDocument(result))
	default:
		return fmt.Errorf("unsupported format %q (supported: table, json, yaml)", format)
	}
}

func printDiagnostics(src string, diags psl.Diagnostics) {
	for _, d := range diags {
		line, col := psl.LineColumn(src, d.Span.Start)
		if d.Severity == psl.SeverityError {
			color.Red("🔴 %d:%d %s", line, col, d.Message)
		} else {
			color.Yellow("🟡 %d:%d %s", line, col, d.Message)
		}
	}
}

func printWarnings(warnings []visualise.Warning) {
	for _, w := range warnings {
		location := w.Model
		if w.Field != "" {
			location += "." + w.Field
		}
		color.Yellow("⚠️  [%s] %s", location, w.Message)
	}
}
