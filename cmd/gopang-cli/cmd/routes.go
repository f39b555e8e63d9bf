package cmd

import (
	"fmt"

	"github.com/nfrund/gopang/cmd/gopang-cli/internal/routes"
	"github.com/nfrund/gopang/internal/config"
	"github.com/nfrund/gopang/internal/server"
	"github.com/spf13/cobra"
)

var routesOutputFormat string

// routesCmd builds the server without starting it and prints its route table.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the registered HTTP routes",
	Long: `List every route the server registers, including the single-page shell
events and the router-based pages.

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		s, err := server.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}
		s.RegisterRoutes()

		list := routes.FromEcho(s.E.Routes())
		switch routesOutputFormat {
		case "json":
			return routes.DisplayJSON(cmd.OutOrStdout(), list)
		case "table":
			return routes.DisplayTable(cmd.OutOrStdout(), list)
		default:
			return fmt.Errorf("unknown format %q, use table or json", routesOutputFormat)
		}
	},
}

func init() {
	routesCmd.Flags().StringVarP(&routesOutputFormat, "format", "f", "table", "output format (table|json)")
	rootCmd.AddCommand(routesCmd)
}
