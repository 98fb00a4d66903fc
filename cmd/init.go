package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultConfig = `# prismaviz configuration
server:
  host: 0.0.0.0
  port: "8000"
  # assets_dir: ./client/dist
  # allowed_origins:
  #   - http://localhost:3000
log:
  level: info
  format: console
`

const sampleSchema = `datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

model User {
  id    Int     @id @default(autoincrement())
  email String  @unique
  name  String?
  posts Post[]
}

model Post {
  id       Int    @id @default(autoincrement())
  title    String
  authorId Int
  author   User   @relation(fields: [authorId], references: [id])

  @@index([authorId])
}
`

var withSample bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .prismaviz.yaml",
	Long: `Initialize prismaviz in the current directory.

Examples:
  prismaviz init               # Write .prismaviz.yaml
  prismaviz init --sample      # Also write prisma/schema.prisma if missing`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(".prismaviz.yaml"); err == nil {
			fmt.Println("❌ .prismaviz.yaml already exists!")
			return
		}
		if err := os.WriteFile(".prismaviz.yaml", []byte(defaultConfig), 0644); err != nil {
			fmt.Println("❌ Error writing .prismaviz.yaml:", err)
			os.Exit(1)
		}
		fmt.Println("✅ .prismaviz.yaml created")

		if !withSample {
			return
		}
		path := filepath.Join("prisma", "schema.prisma")
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("⚠️  %s already exists, leaving it untouched\n", path)
			return
		}
		if err := os.MkdirAll("prisma", 0755); err != nil {
			fmt.Println("❌ Error creating prisma directory:", err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, []byte(sampleSchema), 0644); err != nil {
			fmt.Printf("❌ Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("✅ %s created\n", path)
	},
}

func init() {
	initCmd.Flags().BoolVar(&withSample, "sample", false, "Also write a sample Prisma schema")
}
