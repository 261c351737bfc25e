package gitlab

import (
	"fmt"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/teams"
	"strconv"
	"strings"
	"time"
)

const (
	noReviewer = "No Reviewer"
	unknown    = "Unknown"

	addedPerChange   = 50
	deletedPerChange = 20

	// Used when timestamps cannot be parsed.
	defaultHours = 8.0
)

type user struct {
	Name string `json:"name"`
}

type mergeRequest struct {
	IID            int      `json:"iid"`
	Title          string   `json:"title"`
	State          string   `json:"state"`
	Author         *user    `json:"author"`
	Assignee       *user    `json:"assignee"`
	Reviewers      []user   `json:"reviewers"`
	Labels         []string `json:"labels"`
	CreatedAt      string   `json:"created_at"`
	MergedAt       *string  `json:"merged_at"`
	ClosedAt       *string  `json:"closed_at"`
	ChangesCount   string   `json:"changes_count"`
	UserNotesCount int      `json:"user_notes_count"`
}

type pipeline struct {
	ID       int      `json:"id"`
	Status   string   `json:"status"`
	Duration *float64 `json:"duration"`
}

var stateMap = map[string]string{
	"merged": models.PRStatusMerged,
	"opened": models.PRStatusOpen,
	"closed": models.PRStatusClosed,
	"locked": models.PRStatusClosed,
}

func (c *Client) toPullRequest(mr mergeRequest, commits int) models.PullRequest {
	status, ok := stateMap[mr.State]
	if !ok {
		status = models.PRStatusOpen
	}

	author := unknown
	if mr.Author != nil && mr.Author.Name != "" {
		author = mr.Author.Name
	}

	changes := changesCount(mr.ChangesCount)

	return models.PullRequest{
		ID:           fmt.Sprintf("MR-%d", mr.IID),
		Title:        mr.Title,
		Status:       status,
		Author:       author,
		Reviewer:     reviewer(mr),
		Team:         teams.FromLabels(c.teams, mr.Labels),
		CreatedDate:  datePart(mr.CreatedAt),
		TimeSpent:    c.openHours(mr),
		LinesAdded:   changes * addedPerChange,
		LinesDeleted: changes * deletedPerChange,
		Comments:     mr.UserNotesCount,
		Commits:      commits,
	}
}

func reviewer(mr mergeRequest) string {
	if len(mr.Reviewers) > 0 && mr.Reviewers[0].Name != "" {
		return mr.Reviewers[0].Name
	}
	if mr.Assignee != nil && mr.Assignee.Name != "" {
		return mr.Assignee.Name
	}
	return noReviewer
}

// openHours is the time between creation and merge, close or now.
func (c *Client) openHours(mr mergeRequest) float64 {
	created, err := time.Parse(time.RFC3339, mr.CreatedAt)
	if err != nil {
		return defaultHours
	}

	end := c.now()
	for _, ts := range []*string{mr.MergedAt, mr.ClosedAt} {
		if ts == nil || *ts == "" {
			continue
		}
		if end, err = time.Parse(time.RFC3339, *ts); err != nil {
			return defaultHours
		}
		break
	}

	return end.Sub(created).Hours()
}

// changesCount parses GitLab's string count, which may read "1000+".
func changesCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "+"))
	if err != nil {
		return 0
	}
	return n
}

func datePart(ts string) string {
	if len(ts) < len(models.DateLayout) {
		return ts
	}
	return ts[:len(models.DateLayout)]
}
