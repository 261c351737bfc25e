package models

import "time"

// Dataset is one immutable snapshot of the five record sequences.
// Nothing mutates a Dataset after a loader returns it.
type Dataset struct {
	Stories      []UserStory       `json:"user_stories" yaml:"user_stories"`
	PullRequests []PullRequest     `json:"pull_requests" yaml:"pull_requests"`
	Tests        []TestActivity    `json:"testing" yaml:"testing"`
	Support      []SupportTicket   `json:"prod_support" yaml:"prod_support"`
	Issues       []ProductionIssue `json:"prod_issues" yaml:"prod_issues"`

	Source   string    `json:"-" yaml:"-"`
	LoadedAt time.Time `json:"-" yaml:"-"`
}

type DatasetCounts struct {
	Stories      int `json:"user_stories"`
	PullRequests int `json:"pull_requests"`
	Tests        int `json:"testing"`
	Support      int `json:"prod_support"`
	Issues       int `json:"prod_issues"`
}

func (d *Dataset) Counts() DatasetCounts {
	return DatasetCounts{
		Stories:      len(d.Stories),
		PullRequests: len(d.PullRequests),
		Tests:        len(d.Tests),
		Support:      len(d.Support),
		Issues:       len(d.Issues),
	}
}
