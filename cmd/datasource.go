package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/prismaviz/database"
	"github.com/ridoystarlord/prismaviz/loader"
	"github.com/ridoystarlord/prismaviz/psl"
)

var datasourceCmd = &cobra.Command{
	Use:   "datasource",
	Short: "Inspect the schema's datasource",
}

var (
	datasourceFile    string
	datasourceTimeout time.Duration
)

var datasourceCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check database connectivity",
	Long: `Check that the database named by the schema's datasource block is
accessible and responsive. env("...") urls are read from the environment
and from .env.

Examples:
  prismaviz datasource check                    # Check prisma/schema.prisma
  prismaviz datasource check --timeout 10s      # Set custom timeout
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkDatasource(); err != nil {
			fmt.Printf("❌ Database health check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Database is healthy and accessible")
	},
}

func init() {
	datasourceCheckCmd.Flags().StringVar(&datasourceFile, "file", "prisma/schema.prisma", "Schema file to read")
	datasourceCheckCmd.Flags().DurationVarP(&datasourceTimeout, "timeout", "t", 5*time.Second, "Timeout for health check")
	datasourceCmd.AddCommand(datasourceCheckCmd)
}

func checkDatasource() error {
	text, err := loader.LoadSchemaFile(datasourceFile)
	if err != nil {
		return err
	}

	ds, err := database.DatasourceFromAST(psl.Parse(text), filepath.Dir(datasourceFile))
	if err != nil {
		return err
	}
	fmt.Printf("🔌 %s (%s): %s\n", ds.Name, ds.Provider, ds.Redacted())

	ctx, cancel := context.WithTimeout(context.Background(), datasourceTimeout)
	defer cancel()
	return database.Ping(ctx, ds)
}
