// Package commands provides the CLI commands for the tdz gateway.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	prettyLogs bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "tdz-gateway",
	Short: "HTTP gateway for the todozi (tdz) CLI",
	Long: `tdz-gateway exposes the todozi command-line tool as a REST API.

Every route translates into one tdz invocation; the binary's output is
relayed back inside a JSON envelope. Run 'tdz-gateway serve' to start
the server, or 'tdz-gateway resolve' to check which tdz binary the
gateway would use.`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&prettyLogs, "pretty-logs", false, "Human-readable log output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG|INFO|WARN|ERROR)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("tdz-gateway %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resolveCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
