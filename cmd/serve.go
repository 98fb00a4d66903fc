package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ridoystarlord/prismaviz/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Launch the web based schema visualiser",
	Long: `Launch the schema visualiser web server.

The server exposes:
- GET  /                       the web client (from --assets)
- POST /api/v1/visualise       upload a schema as multipart field "schema"
- POST /api/v1/code_highlight  markup of the model at a span

The interface will be available at http://localhost:8000 by default.`,
	Run: func(cmd *cobra.Command, args []string) {
		port := viper.GetString("server.port")

		srv := server.New(server.Config{
			Host:           viper.GetString("server.host"),
			Port:           port,
			AssetsDir:      viper.GetString("server.assets_dir"),
			AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
		}, log.Logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("🚀 Starting schema visualiser on http://localhost:%s\n", port)
		fmt.Println("Press Ctrl+C to stop the server")

		if err := srv.ListenAndServe(ctx); err != nil {
			fmt.Printf("❌ Server failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().String("port", "8000", "Port to run the web server on")
	serveCmd.Flags().String("host", "0.0.0.0", "Address to bind")
	serveCmd.Flags().String("assets", "", "Directory holding the web client")
	serveCmd.Flags().StringSlice("allowed-origins", nil, "Origins allowed by CORS (default: any)")
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	viper.BindPFlag("server.assets_dir", serveCmd.Flags().Lookup("assets"))
	viper.BindPFlag("server.allowed_origins", serveCmd.Flags().Lookup("allowed-origins"))
}
