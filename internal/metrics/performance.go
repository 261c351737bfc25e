package metrics

import "productivity-tracker/internal/domain/models"

// Weights of one completed item in the productivity score.
const (
	weightStoryDone       = 10
	weightPRMerged        = 8
	weightTestPassed      = 5
	weightSupportResolved = 3
	weightIssueResolved   = 15
)

// TeamPerformance returns one entry per roster member, in roster order,
// including members without any attributed records.
func TeamPerformance(ds models.Dataset, roster []string) []models.MemberPerformance {
	out := make([]models.MemberPerformance, 0, len(roster))
	for _, member := range roster {
		out = append(out, memberPerformance(ds, member))
	}
	return out
}

func memberPerformance(ds models.Dataset, member string) models.MemberPerformance {
	owned := models.Dataset{
		Stories:      filter(ds.Stories, func(s models.UserStory) bool { return s.Assignee == member }),
		PullRequests: filter(ds.PullRequests, func(pr models.PullRequest) bool { return pr.Author == member }),
		Tests:        filter(ds.Tests, func(t models.TestActivity) bool { return t.Tester == member }),
		Support:      filter(ds.Support, func(s models.SupportTicket) bool { return s.Assignee == member }),
		Issues:       filter(ds.Issues, func(i models.ProductionIssue) bool { return i.Assignee == member }),
	}

	storiesDone := count(owned.Stories, func(s models.UserStory) bool { return s.Status == models.StoryStatusDone })
	prsMerged := count(owned.PullRequests, func(pr models.PullRequest) bool { return pr.Status == models.PRStatusMerged })
	testsPassed := count(owned.Tests, func(t models.TestActivity) bool { return t.Status == models.TestStatusPassed })
	supportResolved := count(owned.Support, func(s models.SupportTicket) bool { return s.Status == models.SupportStatusResolved })
	issuesResolved := count(owned.Issues, func(i models.ProductionIssue) bool { return i.Status == models.IssueStatusResolved })

	totalTime := totalsOf(owned).all()
	weighted := storiesDone*weightStoryDone +
		prsMerged*weightPRMerged +
		testsPassed*weightTestPassed +
		supportResolved*weightSupportResolved +
		issuesResolved*weightIssueResolved

	return models.MemberPerformance{
		Name:              member,
		TotalTime:         round(totalTime, 1),
		StoriesCompleted:  storiesDone,
		PRsMerged:         prsMerged,
		TestsDone:         len(owned.Tests),
		SupportTickets:    len(owned.Support),
		IssuesResolved:    issuesResolved,
		ProductivityScore: round(ratio(float64(weighted), totalTime), 2),
	}
}
