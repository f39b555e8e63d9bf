package cmd

import (
	"fmt"
	"os"

	"github.com/nfrund/gopang/internal/config"
	"github.com/nfrund/gopang/internal/logging"
	"github.com/nfrund/gopang/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr   string
	serveAssets string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server until it receives an interrupt.

Configuration comes from the environment and an optional .env file. The
flags override the matching variables.

Examples:
  gopang serve
  gopang serve --addr :3000 --assets disk`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			os.Setenv("APP_ADDR", serveAddr)
		}
		if serveAssets != "" {
			os.Setenv("APP_ASSETS", serveAssets)
		}

		cfg := config.New()
		logging.New()

		s, err := server.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}
		s.RegisterRoutes()
		return s.Start(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (APP_ADDR)")
	serveCmd.Flags().StringVar(&serveAssets, "assets", "", "static asset source, embed or disk (APP_ASSETS)")
	rootCmd.AddCommand(serveCmd)
}
