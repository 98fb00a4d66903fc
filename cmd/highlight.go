package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/prismaviz/highlight"
	"github.com/ridoystarlord/prismaviz/loader"
	"github.com/ridoystarlord/prismaviz/schema"
)

var (
	highlightFile  string
	highlightStart int
	highlightEnd   int
)

var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Print the highlighted markup of one model",
	Long: `Print the HTML markup of the model declared exactly at the given byte span.

Examples:
  prismaviz highlight --file schema.prisma --start 0 --end 120
`,
	Run: func(cmd *cobra.Command, args []string) {
		text, err := loader.LoadSchemaFile(highlightFile)
		if err != nil {
			fmt.Printf("❌ Error loading schema: %v\n", err)
			os.Exit(1)
		}

		fragment, err := highlight.Lookup(text, schema.Span{Start: highlightStart, End: highlightEnd})
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		fmt.Println(fragment.HTML)
	},
}

func init() {
	highlightCmd.Flags().StringVar(&highlightFile, "file", "prisma/schema.prisma", "Schema file to read")
	highlightCmd.Flags().IntVar(&highlightStart, "start", 0, "Start byte offset of the model")
	highlightCmd.Flags().IntVar(&highlightEnd, "end", 0, "End byte offset of the model")
	highlightCmd.MarkFlagRequired("end")
}
