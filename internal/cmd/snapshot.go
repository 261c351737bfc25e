package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"productivity-tracker/internal/app"
	"productivity-tracker/internal/config"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/logger"
	"productivity-tracker/internal/metrics"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	snapshotTeam   string
	snapshotDays   int
	snapshotFormat string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Load the dataset once and print overview, insights and trends",
	Example: `  productivity-tracker snapshot
  productivity-tracker snapshot --team "Team Alpha" --days 14 --format yaml`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotTeam, "team", "", "Only include records of this team")
	snapshotCmd.Flags().IntVar(&snapshotDays, "days", metrics.DefaultTrendDays, "Trend window in days (1-365)")
	snapshotCmd.Flags().StringVar(&snapshotFormat, "format", "json", "Output format: json | yaml")
}

type snapshot struct {
	Team     string           `json:"team,omitempty" yaml:"team,omitempty"`
	Overview models.Overview  `json:"overview" yaml:"overview"`
	Insights []models.Insight `json:"insights" yaml:"insights"`
	Trends   models.Trends    `json:"trends" yaml:"trends"`
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	if snapshotFormat != "json" && snapshotFormat != "yaml" {
		return fmt.Errorf("unknown format %q", snapshotFormat)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// stdout carries the snapshot, so logs go to stderr.
	log := logger.NewWithWriter(cfg.Env, os.Stderr)

	application, err := app.New(cmd.Context(), log, cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	dashboard := application.Dependencies().DashboardService

	trends, err := dashboard.Trends(cmd.Context(), snapshotDays, snapshotTeam)
	if err != nil {
		return err
	}

	return writeSnapshot(cmd.OutOrStdout(), snapshotFormat, snapshot{
		Team:     snapshotTeam,
		Overview: dashboard.Overview(cmd.Context(), snapshotTeam),
		Insights: dashboard.Insights(cmd.Context(), snapshotTeam),
		Trends:   trends,
	})
}

func writeSnapshot(w io.Writer, format string, s snapshot) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(s)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
