package cmd

import (
	"os/signal"
	"productivity-tracker/internal/app"
	"productivity-tracker/internal/config"
	"productivity-tracker/internal/lib/logger"
	"syscall"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, log, cfg)
	if err != nil {
		return err
	}

	go application.MustRun()

	<-ctx.Done()

	application.GracefulShutdown()

	return nil
}
