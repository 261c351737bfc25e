package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"productivity-tracker/internal/app/rest"
	"productivity-tracker/internal/config"
	v1 "productivity-tracker/internal/http/v1"
	"productivity-tracker/internal/jobs"
	"productivity-tracker/internal/lib/logger/sl"
	"productivity-tracker/internal/lib/migrator"
	"productivity-tracker/internal/providers"
	"productivity-tracker/internal/repo"
	"productivity-tracker/internal/service"
	"productivity-tracker/internal/storage/mockfile"
	"productivity-tracker/internal/storage/postgresql"
	"productivity-tracker/internal/store"
	"time"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log       *slog.Logger
	deps      *v1.RouterDependencies
	storage   *postgresql.Storage
	refresher *jobs.Refresher
	restApp   *rest.App
}

// New wires every component for cfg and loads the first dataset snapshot.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	source, err := cfg.ResolveDataSource()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.With(slog.String("op", op)).Info("data source resolved", slog.String("data_source", source))

	bundle := providers.NewBundle(log, cfg)

	a := &App{log: log}

	var (
		loader store.Loader
		purger service.Purger
	)
	switch source {
	case config.SourceMock:
		loader = mockfile.New(cfg.MockDataPath, log)
	case config.SourceLive:
		live := providers.NewLiveLoader(log, bundle.Jira, bundle.GitLab)
		loader, purger = live, live
	case config.SourcePostgres:
		a.storage, err = postgresql.New(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := migrator.RunMigrations(ctx, a.storage.GetDB(), log); err != nil {
			_ = a.storage.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		loader = repo.NewWarehouseRepo(a.storage.GetDB())
	}

	recordStore := store.New(log, loader)
	if _, err := recordStore.Reload(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("%s: initial load: %w", op, err)
	}

	reloadService := service.NewReloadService(log, recordStore, purger)

	a.deps = &v1.RouterDependencies{
		DashboardService:   service.NewDashboardService(log, recordStore, cfg.TeamMembers, time.Now),
		ActivityService:    service.NewActivityService(log, recordStore),
		StatusService:      service.NewStatusService(log, recordStore, source, cfg.Teams, bundle.Jira, bundle.GitLab, bundle.Confluence),
		ReloadService:      reloadService,
		IntegrationService: service.NewIntegrationService(log, bundle.Confluence, bundle.GitLab),
	}

	if cfg.RefreshCron != "" {
		a.refresher, err = jobs.NewRefresher(log, cfg.RefreshCron, reloadService)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	a.restApp = rest.New(log, a.deps, cfg.Server.Port, cfg.Server.Timeout)

	return a, nil
}

// Dependencies exposes the wired services, e.g. for one-shot CLI commands.
func (a *App) Dependencies() *v1.RouterDependencies {
	return a.deps
}

func (a *App) Handler() http.Handler {
	return a.restApp.Handler()
}

func (a *App) MustRun() {
	const op = "app.MustRun"
	a.log.With(slog.String("op", op)).Info("starting application")

	if a.refresher != nil {
		a.refresher.Start()
	}

	if err := a.restApp.Run(); err != nil {
		panic(err)
	}
}

func (a *App) GracefulShutdown() {
	const op = "app.GracefulShutdown"

	log := a.log.With(slog.String("op", op))
	log.Info("shutting down application")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.refresher != nil {
		a.refresher.Stop(ctx)
	}

	if err := a.restApp.Stop(ctx); err != nil {
		log.Error("failed to stop HTTP server", sl.Err(err))
	}

	a.Close()
}

// Close releases the database connection, if any.
func (a *App) Close() {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.log.Error("failed to close database", sl.Err(err))
		return
	}
	a.log.Info("database connection closed")
}
