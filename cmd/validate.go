package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/prismaviz/loader"
	"github.com/ridoystarlord/prismaviz/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a Prisma schema",
	Long: `Validate your Prisma schema file.

This command reports:
- Syntax errors with their line and column
- Attributes whose arguments could not be read
- Models declared more than once
- Relations pointing at fields or types that do not exist
- Models without an id or unique field

Examples:
  prismaviz validate                               # Validate prisma/schema.prisma
  prismaviz validate --schema custom.prisma        # Validate custom schema file
  prismaviz validate --format json                 # Output validation results as JSON
`,
	Run: func(cmd *cobra.Command, args []string) {
		valid, err := validateSchema()
		if err != nil {
			fmt.Printf("❌ Schema validation failed: %v\n", err)
			os.Exit(1)
		}
		if !valid {
			os.Exit(1)
		}
	},
}

var (
	validateSchemaFile string
	validateFormat     string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaFile, "schema", "s", "prisma/schema.prisma", "Schema file to validate")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Output format (text, json)")
}

func validateSchema() (bool, error) {
	text, err := loader.LoadSchemaFile(validateSchemaFile)
	if err != nil {
		return false, fmt.Errorf("failed to load schema: %w", err)
	}

	result := validator.NewSchemaValidator(text).Validate()
	if validateFormat == "json" {
		return result.Valid, outputJSON(result)
	}
	return result.Valid, outputText(result)
}

func outputJSON(result *validator.ValidationResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *validator.ValidationResult) error {
	if result.Valid {
		color.Green("✅ Schema validation passed!")
	} else {
		color.Red("❌ Schema validation failed!")
	}

	printIssues("🔴 Errors", result.Errors)
	printIssues("🟡 Warnings", result.Warnings)
	printIssues("🔵 Info", result.Info)

	fmt.Printf("\n📊 Summary:\n")
	fmt.Printf("  • Errors: %d\n", len(result.Errors))
	fmt.Printf("  • Warnings: %d\n", len(result.Warnings))
	fmt.Printf("  • Info: %d\n", len(result.Info))

	if !result.Valid {
		fmt.Printf("\n💡 Fix the errors above before visualising the schema.\n")
	}
	return nil
}

func printIssues(title string, issues []validator.ValidationError) {
	if len(issues) == 0 {
		return
	}
	fmt.Printf("\n%s (%d):\n", title, len(issues))
	for i, issue := range issues {
		fmt.Printf("  %d. %d:%d ", i+1, issue.Line, issue.Column)
		if issue.Model != "" {
			fmt.Printf("[%s]", issue.Model)
		}
		if issue.Field != "" {
			fmt.Printf(".%s", issue.Field)
		}
		fmt.Printf(": %s\n", issue.Message)
	}
}
