// Package jira reads user stories, test activities, support tickets and
// production issues from the Jira REST API.
package jira

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
	"strconv"
	"time"
)

const (
	searchPath = "/rest/api/2/search"
	maxResults = 100
)

type Client struct {
	log        *slog.Logger
	http       *httpjson.Client
	projectKey string
	teams      []string
	enabled    bool

	stories *cache.Value[[]models.UserStory]
	tests   *cache.Value[[]models.TestActivity]
	support *cache.Value[[]models.SupportTicket]
	issues  *cache.Value[[]models.ProductionIssue]
}

func New(log *slog.Logger, cfg config.JiraConfig, teams []string, ttl, timeout time.Duration, opts ...httpjson.Option) *Client {
	opts = append([]httpjson.Option{httpjson.WithBasicAuth(cfg.Email, cfg.APIToken)}, opts...)

	return &Client{
		log:        log.With(slog.String("provider", "jira")),
		http:       httpjson.New(cfg.URL, timeout, opts...),
		projectKey: cfg.ProjectKey,
		teams:      teams,
		enabled:    cfg.URL != "" && cfg.APIToken != "",
		stories:    cache.NewValue[[]models.UserStory](ttl),
		tests:      cache.NewValue[[]models.TestActivity](ttl),
		support:    cache.NewValue[[]models.SupportTicket](ttl),
		issues:     cache.NewValue[[]models.ProductionIssue](ttl),
	}
}

func (c *Client) Enabled() bool {
	return c.enabled
}

// Purge drops every cached response.
func (c *Client) Purge() {
	c.stories.Purge()
	c.tests.Purge()
	c.support.Purge()
	c.issues.Purge()
}

func (c *Client) UserStories(ctx context.Context) ([]models.UserStory, error) {
	return fetch(ctx, c, c.stories, "project = %s AND type in (Story, Task, Bug) ORDER BY created DESC", c.toStory)
}

func (c *Client) TestActivities(ctx context.Context) ([]models.TestActivity, error) {
	return fetch(ctx, c, c.tests, "project = %s AND (type = Test OR labels in (testing, qa)) ORDER BY created DESC", c.toTest)
}

func (c *Client) ProductionIssues(ctx context.Context) ([]models.ProductionIssue, error) {
	return fetch(ctx, c, c.issues, "project = %s AND (labels in (production, prod) OR priority in (Critical, Blocker)) ORDER BY created DESC", c.toProductionIssue)
}

func (c *Client) SupportTickets(ctx context.Context) ([]models.SupportTicket, error) {
	return fetch(ctx, c, c.support, `project = %s AND (type = "Support" OR labels in (support, customer)) ORDER BY created DESC`, c.toSupportTicket)
}

func fetch[T any](ctx context.Context, c *Client, slot *cache.Value[[]T], jql string, convert func(issue) T) ([]T, error) {
	if !c.enabled {
		return nil, apperrors.ErrProviderDisabled
	}

	return slot.GetOrLoad(ctx, func(ctx context.Context) ([]T, error) {
		found, err := c.search(ctx, fmt.Sprintf(jql, c.projectKey))
		if err != nil {
			return nil, err
		}

		out := make([]T, 0, len(found))
		for _, is := range found {
			out = append(out, convert(is))
		}
		return out, nil
	})
}

func (c *Client) search(ctx context.Context, jql string) ([]issue, error) {
	const op = "providers.jira.search"

	q := url.Values{}
	q.Set("jql", jql)
	q.Set("maxResults", strconv.Itoa(maxResults))

	var resp searchResponse
	if err := c.http.Get(ctx, searchPath, q, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.log.Debug("jira search finished", slog.String("jql", jql), slog.Int("issues", len(resp.Issues)))

	return resp.Issues, nil
}
