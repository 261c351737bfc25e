// Package gitlab reads merge requests and CI pipeline statistics from the
// GitLab v4 API.
package gitlab

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"productivity-tracker/internal/apperrors"
	"productivity-tracker/internal/config"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/cache"
	"productivity-tracker/internal/lib/httpjson"
	"productivity-tracker/internal/lib/logger/sl"
	"time"
)

const (
	mergeRequestsPerPage = 50
	pipelinesPerPage     = 20
)

type Client struct {
	log        *slog.Logger
	http       *httpjson.Client
	projectIDs []string
	teams      []string
	enabled    bool
	now        func() time.Time

	mergeRequests *cache.Value[[]models.PullRequest]
	pipelines     *cache.Value[models.PipelineStats]
}

func New(log *slog.Logger, cfg config.GitLabConfig, teams []string, ttl, timeout time.Duration, opts ...httpjson.Option) *Client {
	opts = append([]httpjson.Option{httpjson.WithHeader("PRIVATE-TOKEN", cfg.Token)}, opts...)

	return &Client{
		log:           log.With(slog.String("provider", "gitlab")),
		http:          httpjson.New(cfg.URL, timeout, opts...),
		projectIDs:    cfg.ProjectIDs,
		teams:         teams,
		enabled:       cfg.URL != "" && cfg.Token != "",
		now:           time.Now,
		mergeRequests: cache.NewValue[[]models.PullRequest](ttl),
		pipelines:     cache.NewValue[models.PipelineStats](ttl),
	}
}

func (c *Client) Enabled() bool {
	return c.enabled
}

func (c *Client) Purge() {
	c.mergeRequests.Purge()
	c.pipelines.Purge()
}

// MergeRequests returns the latest merge requests of every configured project
// as pull requests. Projects that fail to load are skipped.
func (c *Client) MergeRequests(ctx context.Context) ([]models.PullRequest, error) {
	if !c.enabled {
		return nil, apperrors.ErrProviderDisabled
	}

	return c.mergeRequests.GetOrLoad(ctx, func(ctx context.Context) ([]models.PullRequest, error) {
		const op = "providers.gitlab.MergeRequests"

		log := c.log.With(slog.String("op", op))

		prs := []models.PullRequest{}
		for _, project := range c.projectIDs {
			mrs, err := c.listMergeRequests(ctx, project)
			if err != nil {
				if ctx.Err() != nil {
					return nil, fmt.Errorf("%s: %w", op, ctx.Err())
				}
				log.Warn("skipping project", slog.String("project", project), sl.Err(err))
				continue
			}

			for _, mr := range mrs {
				prs = append(prs, c.toPullRequest(mr, c.commitCount(ctx, project, mr.IID)))
			}
		}

		return prs, nil
	})
}

// PipelineStats summarises the most recent pipelines of every configured project.
func (c *Client) PipelineStats(ctx context.Context) (models.PipelineStats, error) {
	if !c.enabled {
		return models.PipelineStats{}, apperrors.ErrProviderDisabled
	}

	return c.pipelines.GetOrLoad(ctx, func(ctx context.Context) (models.PipelineStats, error) {
		const op = "providers.gitlab.PipelineStats"

		log := c.log.With(slog.String("op", op))

		stats := models.PipelineStats{Enabled: true}
		var totalDuration float64
		for _, project := range c.projectIDs {
			var list []pipeline
			q := url.Values{"per_page": {fmt.Sprint(pipelinesPerPage)}}
			if err := c.http.Get(ctx, projectPath(project, "pipelines"), q, &list); err != nil {
				if ctx.Err() != nil {
					return models.PipelineStats{}, fmt.Errorf("%s: %w", op, ctx.Err())
				}
				log.Warn("skipping project", slog.String("project", project), sl.Err(err))
				continue
			}

			for _, p := range list {
				stats.TotalPipelines++
				switch p.Status {
				case "success":
					stats.Successful++
				case "failed":
					stats.Failed++
				}
				if p.Duration != nil {
					totalDuration += *p.Duration
				}
			}
		}

		if stats.TotalPipelines > 0 {
			stats.AvgDuration = totalDuration / float64(stats.TotalPipelines) / 60
		}

		return stats, nil
	})
}

func (c *Client) listMergeRequests(ctx context.Context, project string) ([]mergeRequest, error) {
	q := url.Values{
		"state":    {"all"},
		"order_by": {"created_at"},
		"sort":     {"desc"},
		"per_page": {fmt.Sprint(mergeRequestsPerPage)},
	}

	var mrs []mergeRequest
	if err := c.http.Get(ctx, projectPath(project, "merge_requests"), q, &mrs); err != nil {
		return nil, err
	}
	return mrs, nil
}

// commitCount falls back to one commit when the list cannot be fetched.
func (c *Client) commitCount(ctx context.Context, project string, iid int) int {
	var commits []struct {
		ID string `json:"id"`
	}
	if err := c.http.Get(ctx, projectPath(project, fmt.Sprintf("merge_requests/%d/commits", iid)), nil, &commits); err != nil {
		c.log.Debug("commit list unavailable", slog.String("project", project), slog.Int("iid", iid), sl.Err(err))
		return 1
	}
	return len(commits)
}

func projectPath(project, rest string) string {
	return "/api/v4/projects/" + url.PathEscape(project) + "/" + rest
}
