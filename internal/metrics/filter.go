package metrics

import "productivity-tracker/internal/domain/models"

// FilterByTeam narrows all five sequences to records owned by team.
// An empty team returns ds as is. An unknown team yields empty sequences.
func FilterByTeam(ds models.Dataset, team string) models.Dataset {
	if team == "" {
		return ds
	}

	return models.Dataset{
		Stories:      filter(ds.Stories, func(s models.UserStory) bool { return s.Team == team }),
		PullRequests: filter(ds.PullRequests, func(pr models.PullRequest) bool { return pr.Team == team }),
		Tests:        filter(ds.Tests, func(t models.TestActivity) bool { return t.Team == team }),
		Support:      filter(ds.Support, func(s models.SupportTicket) bool { return s.Team == team }),
		Issues:       filter(ds.Issues, func(i models.ProductionIssue) bool { return i.Team == team }),
		Source:       ds.Source,
		LoadedAt:     ds.LoadedAt,
	}
}

func filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func count[T any](records []T, match func(T) bool) int {
	n := 0
	for _, r := range records {
		if match(r) {
			n++
		}
	}
	return n
}
