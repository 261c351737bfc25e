// Package cmd contains the CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "productivity-tracker",
	Short: "Engineering productivity metrics over HTTP",
	Long: `productivity-tracker aggregates user stories, pull requests, test runs,
support tickets and production issues into overview metrics, per-member
performance, daily trends and rule-based insights.

Records come from a static file, from Jira and GitLab, or from a Postgres
warehouse, selected with DATA_SOURCE. All settings are read from the
environment and an optional .env file.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command. Called by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
}
