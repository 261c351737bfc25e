package metrics

import (
	"productivity-tracker/internal/domain/models"
	"sort"
)

func StorySummary(ds models.Dataset) models.StorySummary {
	return models.StorySummary{
		Stories:    nonNil(ds.Stories),
		Total:      len(ds.Stories),
		Completed:  count(ds.Stories, func(s models.UserStory) bool { return s.Status == models.StoryStatusDone }),
		InProgress: count(ds.Stories, func(s models.UserStory) bool { return s.Status == models.StoryStatusInProgress }),
	}
}

func PullRequestSummary(ds models.Dataset) models.PullRequestSummary {
	return models.PullRequestSummary{
		PRs:    nonNil(ds.PullRequests),
		Total:  len(ds.PullRequests),
		Merged: count(ds.PullRequests, func(pr models.PullRequest) bool { return pr.Status == models.PRStatusMerged }),
		Open:   count(ds.PullRequests, func(pr models.PullRequest) bool { return pr.Status == models.PRStatusOpen }),
	}
}

func TestingSummary(ds models.Dataset) models.TestingSummary {
	return models.TestingSummary{
		Tests:     nonNil(ds.Tests),
		TotalTime: totalsOf(ds).tests,
		Passed:    count(ds.Tests, func(t models.TestActivity) bool { return t.Status == models.TestStatusPassed }),
		Failed:    count(ds.Tests, func(t models.TestActivity) bool { return t.Status == models.TestStatusFailed }),
	}
}

func SupportSummary(ds models.Dataset) models.SupportSummary {
	return models.SupportSummary{
		Support:   nonNil(ds.Support),
		TotalTime: totalsOf(ds).support,
		Resolved:  count(ds.Support, func(s models.SupportTicket) bool { return s.Status == models.SupportStatusResolved }),
	}
}

func IssueSummary(ds models.Dataset) models.IssueSummary {
	var resolved int
	var resolutionHours float64
	for _, i := range ds.Issues {
		if i.Status != models.IssueStatusResolved {
			continue
		}
		resolved++
		if i.ResolutionTime != nil {
			resolutionHours += *i.ResolutionTime
		}
	}

	return models.IssueSummary{
		Issues:            nonNil(ds.Issues),
		Total:             len(ds.Issues),
		Critical:          count(ds.Issues, func(i models.ProductionIssue) bool { return i.Severity == models.IssueSeverityCritical }),
		Resolved:          resolved,
		AvgResolutionTime: ratio(resolutionHours, float64(resolved)),
	}
}

// Teams lists the distinct non-empty team names found in any sequence.
func Teams(ds models.Dataset) []string {
	seen := make(map[string]struct{})
	mark := func(team string) {
		if team != "" {
			seen[team] = struct{}{}
		}
	}
	for _, s := range ds.Stories {
		mark(s.Team)
	}
	for _, pr := range ds.PullRequests {
		mark(pr.Team)
	}
	for _, t := range ds.Tests {
		mark(t.Team)
	}
	for _, s := range ds.Support {
		mark(s.Team)
	}
	for _, i := range ds.Issues {
		mark(i.Team)
	}

	teams := make([]string, 0, len(seen))
	for team := range seen {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

// nonNil keeps JSON output as [] rather than null.
func nonNil[T any](records []T) []T {
	if records == nil {
		return []T{}
	}
	return records
}
