package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ridoystarlord/prismaviz/utils"
)

var (
	cfgFile      string
	envFile      string
	schemaFile   string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "prismaviz",
	Short: "Visualise a Prisma schema in your terminal or browser",
	Long: `prismaviz reads a Prisma schema and shows its models, field types,
attributes and relations.

Examples:

  prismaviz --file prisma/schema.prisma
  prismaviz --file prisma/schema.prisma --format json
  prismaviz serve --port 8000
  prismaviz highlight --file schema.prisma --start 0 --end 120
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.SetupGlobalLogger(viper.GetString("log.level"), viper.GetString("log.format"))
		if envFile != "" {
			if err := utils.LoadEnvFile(envFile); err != nil {
				log.Warn().Err(err).Str("file", envFile).Msg("could not load env file")
			}
		} else {
			utils.LoadEnv()
		}
		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug().Str("file", used).Msg("loaded config")
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if schemaFile == "" {
			cmd.Help()
			return
		}
		if err := visualiseFile(schemaFile, outputFormat); err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}
	},
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: .prismaviz.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Env file to load (default: .env)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.Flags().StringVar(&schemaFile, "file", "", "Full path to your schema.prisma file")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "Output format (table, json, yaml)")

	// Register subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(datasourceCmd)
	rootCmd.AddCommand(initCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".prismaviz")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PRISMAVIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("server.port", "PRISMAVIZ_SERVER_PORT", "PORT")
	viper.BindEnv("server.assets_dir", "PRISMAVIZ_ASSETS_DIR")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Println("⚠️  Could not read config file:", err)
		}
	}
}
