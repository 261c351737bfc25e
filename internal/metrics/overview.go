package metrics

import "productivity-tracker/internal/domain/models"

func Overview(ds models.Dataset) models.Overview {
	completed := count(ds.Stories, func(s models.UserStory) bool { return s.Status == models.StoryStatusDone })
	merged := count(ds.PullRequests, func(pr models.PullRequest) bool { return pr.Status == models.PRStatusMerged })
	active := count(ds.Issues, func(i models.ProductionIssue) bool {
		return i.Status != models.IssueStatusResolved && i.Status != models.IssueStatusClosed
	})
	critical := count(ds.Issues, func(i models.ProductionIssue) bool { return i.Severity == models.IssueSeverityCritical })

	return models.Overview{
		TotalTimeSpent:      round(totalsOf(ds).all(), 1),
		StoryCompletionRate: round(ratio(float64(completed), float64(len(ds.Stories)))*100, 1),
		PRMergeRate:         round(ratio(float64(merged), float64(len(ds.PullRequests)))*100, 1),
		TotalStories:        len(ds.Stories),
		CompletedStories:    completed,
		TotalPRs:            len(ds.PullRequests),
		MergedPRs:           merged,
		ActiveProdIssues:    active,
		CriticalIssues:      critical,
	}
}

// TimeDistribution splits time spent per activity. period is accepted for
// forward compatibility and does not change the result.
func TimeDistribution(ds models.Dataset, period string) models.TimeDistribution {
	_ = period
	t := totalsOf(ds)

	return models.TimeDistribution{
		Development: models.DevelopmentTime{
			UserStories:  round(t.stories, 1),
			PullRequests: round(t.prs, 1),
		},
		Testing:     round(t.tests, 1),
		ProdSupport: round(t.support, 1),
		ProdIssues:  round(t.issues, 1),
	}
}
