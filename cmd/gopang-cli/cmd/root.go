package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gopang",
	Short: "Gopang command line",
	Long: `Gopang serves the food waste demo app and inspects its setup.

Available commands:
  serve      Run the HTTP server
  routes     List the registered HTTP routes
  version    Print the version

Use "gopang [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
