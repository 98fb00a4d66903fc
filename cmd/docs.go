package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/prismaviz/generator"
	"github.com/ridoystarlord/prismaviz/loader"
)

var (
	docsFormat string
	docsOutput string
	docsFile   string
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate an ERD from the schema",
	Long: `Generate an ERD diagram from your Prisma schema.

Supported formats:
  - mermaid: Mermaid ERD diagram
  - plantuml: PlantUML ERD diagram
  - graphviz: Graphviz DOT format

Examples:
  prismaviz docs --format mermaid --output erd.md
  prismaviz docs --format plantuml --output erd.puml
  prismaviz docs --format graphviz                  # print to stdout
`,
	Run: func(cmd *cobra.Command, args []string) {
		result, err := loader.LoadModelsFromFile(docsFile)
		if err != nil {
			fmt.Printf("❌ Error loading schema: %v\n", err)
			os.Exit(1)
		}

		if len(result.Models) == 0 {
			fmt.Println("❌ No models found in schema")
			os.Exit(1)
		}

		content, err := generator.Generate(docsFormat, result.Models)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		if docsOutput == "" {
			fmt.Print(content)
			return
		}
		if err := os.WriteFile(docsOutput, []byte(content), 0644); err != nil {
			fmt.Printf("❌ Error writing %s: %v\n", docsOutput, err)
			os.Exit(1)
		}
		fmt.Printf("✅ %s ERD saved to: %s\n", docsFormat, docsOutput)
	},
}

func init() {
	docsCmd.Flags().StringVar(&docsFormat, "format", "mermaid", "Diagram format (mermaid, plantuml, graphviz)")
	docsCmd.Flags().StringVarP(&docsOutput, "output", "o", "", "Output file (default: stdout)")
	docsCmd.Flags().StringVar(&docsFile, "file", "prisma/schema.prisma", "Schema file to read")
}
