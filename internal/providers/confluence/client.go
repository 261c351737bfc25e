// Package confluence derives documentation and collaboration statistics from
// a Confluence space.
package confluence

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
	"productivity-tracker/internal/lib/teams"
	"strings"
	"time"
)

const (
	contentPath = "/rest/api/content"
	searchPath  = "/rest/api/content/search"

	pageLimit          = 100
	retrospectiveLimit = 20
	// Only the first pages are inspected for updates, teams and contributors.
	inspectedPages = 50
	recentWindow   = 30 * 24 * time.Hour
)

type Client struct {
	log      *slog.Logger
	http     *httpjson.Client
	baseURL  string
	spaceKey string
	teams    []string
	enabled  bool
	now      func() time.Time

	pages          *cache.Value[[]page]
	retrospectives *cache.Value[[]models.Retrospective]
}

func New(log *slog.Logger, cfg config.ConfluenceConfig, teams []string, ttl, timeout time.Duration, opts ...httpjson.Option) *Client {
	opts = append([]httpjson.Option{httpjson.WithBasicAuth(cfg.Email, cfg.APIToken)}, opts...)

	return &Client{
		log:            log.With(slog.String("provider", "confluence")),
		http:           httpjson.New(cfg.URL, timeout, opts...),
		baseURL:        strings.TrimRight(cfg.URL, "/"),
		spaceKey:       cfg.SpaceKey,
		teams:          teams,
		enabled:        cfg.URL != "" && cfg.APIToken != "",
		now:            time.Now,
		pages:          cache.NewValue[[]page](ttl),
		retrospectives: cache.NewValue[[]models.Retrospective](ttl),
	}
}

func (c *Client) Enabled() bool {
	return c.enabled
}

func (c *Client) Purge() {
	c.pages.Purge()
	c.retrospectives.Purge()
}

// DocumentationStats combines page statistics with the space's retrospectives.
func (c *Client) DocumentationStats(ctx context.Context) (models.DocumentationStats, error) {
	const op = "providers.confluence.DocumentationStats"

	if !c.enabled {
		return models.DocumentationStats{}, apperrors.ErrProviderDisabled
	}

	stats := models.DocumentationStats{
		Enabled:        true,
		TeamPages:      map[string]int{},
		Retrospectives: []models.Retrospective{},
	}
	if c.spaceKey == "" {
		return stats, nil
	}

	pages, err := c.pages.GetOrLoad(ctx, c.loadPages)
	if err != nil {
		return models.DocumentationStats{}, fmt.Errorf("%s: %w", op, err)
	}

	retros, err := c.retrospectives.GetOrLoad(ctx, c.loadRetrospectives)
	if err != nil {
		return models.DocumentationStats{}, fmt.Errorf("%s: %w", op, err)
	}

	stats.TotalPages = len(pages)
	stats.Retrospectives = retros

	since := c.now().Add(-recentWindow)
	contributors := map[string]struct{}{}
	for i, p := range pages {
		if i == inspectedPages {
			break
		}

		if when, err := time.Parse(time.RFC3339, p.Version.When); err == nil && when.After(since) {
			stats.RecentUpdates++
		}

		labels := make([]string, 0, len(p.Metadata.Labels.Results))
		for _, l := range p.Metadata.Labels.Results {
			labels = append(labels, l.Name)
		}
		stats.TeamPages[teams.FromLabels(c.teams, labels)]++

		if p.Version.By.DisplayName != "" {
			contributors[p.Version.By.DisplayName] = struct{}{}
		}
	}
	stats.ActiveContributors = len(contributors)

	return stats, nil
}

func (c *Client) loadPages(ctx context.Context) ([]page, error) {
	q := url.Values{
		"spaceKey": {c.spaceKey},
		"type":     {"page"},
		"limit":    {fmt.Sprint(pageLimit)},
		"expand":   {"version,metadata.labels"},
	}

	var resp contentList
	if err := c.http.Get(ctx, contentPath, q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) loadRetrospectives(ctx context.Context) ([]models.Retrospective, error) {
	cql := fmt.Sprintf(`space = "%s" AND (title ~ "retrospective" OR title ~ "retro" OR label = "retrospective")`, c.spaceKey)
	q := url.Values{
		"cql":    {cql},
		"limit":  {fmt.Sprint(retrospectiveLimit)},
		"expand": {"version"},
	}

	var resp contentList
	if err := c.http.Get(ctx, searchPath, q, &resp); err != nil {
		return nil, err
	}

	retros := make([]models.Retrospective, 0, len(resp.Results))
	for _, p := range resp.Results {
		author := p.Version.By.DisplayName
		if author == "" {
			author = "Unknown"
		}
		retros = append(retros, models.Retrospective{
			Title:  p.Title,
			Date:   datePart(p.Version.When),
			Author: author,
			URL:    c.baseURL + "/pages/viewpage.action?pageId=" + url.QueryEscape(p.ID),
		})
	}
	return retros, nil
}

type contentList struct {
	Results []page `json:"results"`
}

type page struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Version struct {
		When string `json:"when"`
		By   struct {
			DisplayName string `json:"displayName"`
		} `json:"by"`
	} `json:"version"`
	Metadata struct {
		Labels struct {
			Results []struct {
				Name string `json:"name"`
			} `json:"results"`
		} `json:"labels"`
	} `json:"metadata"`
}

func datePart(ts string) string {
	if len(ts) < len(models.DateLayout) {
		return ts
	}
	return ts[:len(models.DateLayout)]
}
