// Package providers composes the upstream adapters into a dataset loader.
package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"productivity-tracker/internal/apperrors"
	"productivity-tracker/internal/config"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/logger/sl"
	"productivity-tracker/internal/providers/confluence"
	"productivity-tracker/internal/providers/gitlab"
	"productivity-tracker/internal/providers/jira"
	"time"

	"golang.org/x/sync/errgroup"
)

// SourceName identifies datasets pulled from the upstream APIs.
const SourceName = "live"

type IssueTracker interface {
	Enabled() bool
	UserStories(ctx context.Context) ([]models.UserStory, error)
	TestActivities(ctx context.Context) ([]models.TestActivity, error)
	SupportTickets(ctx context.Context) ([]models.SupportTicket, error)
	ProductionIssues(ctx context.Context) ([]models.ProductionIssue, error)
	Purge()
}

type SourceControl interface {
	Enabled() bool
	MergeRequests(ctx context.Context) ([]models.PullRequest, error)
	Purge()
}

// Bundle holds one instance of every adapter, built once at startup.
type Bundle struct {
	Jira       *jira.Client
	GitLab     *gitlab.Client
	Confluence *confluence.Client
}

func NewBundle(log *slog.Logger, cfg *config.Config) *Bundle {
	ttl := cfg.CacheTTL()
	return &Bundle{
		Jira:       jira.New(log, cfg.Jira, cfg.Teams, ttl, cfg.ClientTimeout),
		GitLab:     gitlab.New(log, cfg.GitLab, cfg.Teams, ttl, cfg.ClientTimeout),
		Confluence: confluence.New(log, cfg.Confluence, cfg.Teams, ttl, cfg.ClientTimeout),
	}
}

type LiveLoader struct {
	log     *slog.Logger
	tracker IssueTracker
	scm     SourceControl
}

func NewLiveLoader(log *slog.Logger, tracker IssueTracker, scm SourceControl) *LiveLoader {
	return &LiveLoader{log: log, tracker: tracker, scm: scm}
}

// Purge drops the adapters' cached responses so the next Load hits upstream.
func (l *LiveLoader) Purge() {
	l.tracker.Purge()
	l.scm.Purge()
}

// Load fetches all five sequences concurrently. A failing fetch leaves its
// sequence empty; only cancellation of ctx fails the load, and it stops the
// remaining fetches.
func (l *LiveLoader) Load(ctx context.Context) (models.Dataset, error) {
	const op = "providers.LiveLoader.Load"

	log := l.log.With(slog.String("op", op))

	ds := models.Dataset{Source: SourceName}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ds.Stories, err = collect(gctx, log, "user_stories", l.tracker.Enabled(), l.tracker.UserStories)
		return err
	})
	g.Go(func() (err error) {
		ds.Tests, err = collect(gctx, log, "testing", l.tracker.Enabled(), l.tracker.TestActivities)
		return err
	})
	g.Go(func() (err error) {
		ds.Support, err = collect(gctx, log, "prod_support", l.tracker.Enabled(), l.tracker.SupportTickets)
		return err
	})
	g.Go(func() (err error) {
		ds.Issues, err = collect(gctx, log, "prod_issues", l.tracker.Enabled(), l.tracker.ProductionIssues)
		return err
	})
	g.Go(func() (err error) {
		ds.PullRequests, err = collect(gctx, log, "pull_requests", l.scm.Enabled(), l.scm.MergeRequests)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", op, err)
	}

	ds.LoadedAt = time.Now()

	return ds, nil
}

// collect runs one fetch. Upstream failures yield an empty sequence; the
// only error returned is ctx's own.
func collect[T any](ctx context.Context, log *slog.Logger, section string, enabled bool, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !enabled {
		log.Debug("provider disabled, section left empty", slog.String("section", section))
		return []T{}, nil
	}

	records, err := fetch(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !errors.Is(err, apperrors.ErrProviderDisabled) {
			log.Error("fetch failed, section left empty", slog.String("section", section), sl.Err(err))
		}
		return []T{}, nil
	}

	return records, nil
}
