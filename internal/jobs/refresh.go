// Package jobs runs scheduled background work.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/logger/sl"
	"time"

	"github.com/robfig/cron/v3"
)

const reloadTimeout = 5 * time.Minute

type Reloader interface {
	Reload(ctx context.Context) (models.ReloadResult, error)
}

// Refresher reloads the record store on a cron schedule. Runs never overlap.
type Refresher struct {
	log      *slog.Logger
	reloader Reloader
	c        *cron.Cron
}

// NewRefresher accepts standard five-field expressions and descriptors such
// as "@every 10m".
func NewRefresher(log *slog.Logger, schedule string, reloader Reloader) (*Refresher, error) {
	const op = "jobs.NewRefresher"

	log = log.With(slog.String("component", "jobs/refresher"))
	cronLog := cronLogger{log: log}

	r := &Refresher{
		log:      log,
		reloader: reloader,
		c:        cron.New(cron.WithLogger(cronLog), cron.WithChain(cron.SkipIfStillRunning(cronLog))),
	}

	if _, err := r.c.AddFunc(schedule, r.refresh); err != nil {
		return nil, fmt.Errorf("%s: invalid schedule %q: %w", op, schedule, err)
	}

	return r, nil
}

func (r *Refresher) Start() {
	r.log.Info("scheduled refresh started")
	r.c.Start()
}

// Stop prevents new runs and waits for a running one to finish or ctx to end.
func (r *Refresher) Stop(ctx context.Context) {
	select {
	case <-r.c.Stop().Done():
	case <-ctx.Done():
		r.log.Warn("refresh still running at shutdown")
	}
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()

	res, err := r.reloader.Reload(ctx)
	if err != nil {
		r.log.Error("scheduled refresh failed", sl.Err(err))
		return
	}

	r.log.Info("scheduled refresh finished",
		slog.String("source", res.Source),
		slog.Any("counts", res.Counts))
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append([]interface{}{sl.Err(err)}, keysAndValues...)...)
}
