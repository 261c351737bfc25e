package models

type Overview struct {
	TotalTimeSpent      float64 `json:"total_time_spent" yaml:"total_time_spent"`
	StoryCompletionRate float64 `json:"story_completion_rate" yaml:"story_completion_rate"`
	PRMergeRate         float64 `json:"pr_merge_rate" yaml:"pr_merge_rate"`
	TotalStories        int     `json:"total_stories" yaml:"total_stories"`
	CompletedStories    int     `json:"completed_stories" yaml:"completed_stories"`
	TotalPRs            int     `json:"total_prs" yaml:"total_prs"`
	MergedPRs           int     `json:"merged_prs" yaml:"merged_prs"`
	ActiveProdIssues    int     `json:"active_prod_issues" yaml:"active_prod_issues"`
	CriticalIssues      int     `json:"critical_issues" yaml:"critical_issues"`
}

type DevelopmentTime struct {
	UserStories  float64 `json:"user_stories" yaml:"user_stories"`
	PullRequests float64 `json:"pull_requests" yaml:"pull_requests"`
}

type TimeDistribution struct {
	Development DevelopmentTime `json:"development" yaml:"development"`
	Testing     float64         `json:"testing" yaml:"testing"`
	ProdSupport float64         `json:"prod_support" yaml:"prod_support"`
	ProdIssues  float64         `json:"prod_issues" yaml:"prod_issues"`
}

type MemberPerformance struct {
	Name              string  `json:"name" yaml:"name"`
	TotalTime         float64 `json:"total_time" yaml:"total_time"`
	StoriesCompleted  int     `json:"stories_completed" yaml:"stories_completed"`
	PRsMerged         int     `json:"prs_merged" yaml:"prs_merged"`
	TestsDone         int     `json:"tests_done" yaml:"tests_done"`
	SupportTickets    int     `json:"support_tickets" yaml:"support_tickets"`
	IssuesResolved    int     `json:"issues_resolved" yaml:"issues_resolved"`
	ProductivityScore float64 `json:"productivity_score" yaml:"productivity_score"`
}

type InsightType string

const (
	InsightWarning  InsightType = "warning"
	InsightCritical InsightType = "critical"
	InsightSuccess  InsightType = "success"
)

type Insight struct {
	Type    InsightType `json:"type" yaml:"type"`
	Title   string      `json:"title" yaml:"title"`
	Message string      `json:"message" yaml:"message"`
	Value   float64     `json:"value" yaml:"value"`
}

type TrendBucket struct {
	Development float64 `json:"development" yaml:"development"`
	Testing     float64 `json:"testing" yaml:"testing"`
	ProdSupport float64 `json:"prod_support" yaml:"prod_support"`
	ProdIssues  float64 `json:"prod_issues" yaml:"prod_issues"`
}

type Trends struct {
	Dates []string                `json:"dates" yaml:"dates"`
	Data  map[string]*TrendBucket `json:"data" yaml:"data"`
}

type StorySummary struct {
	Stories    []UserStory `json:"stories" yaml:"stories"`
	Total      int         `json:"total" yaml:"total"`
	Completed  int         `json:"completed" yaml:"completed"`
	InProgress int         `json:"in_progress" yaml:"in_progress"`
}

type PullRequestSummary struct {
	PRs    []PullRequest `json:"prs" yaml:"prs"`
	Total  int           `json:"total" yaml:"total"`
	Merged int           `json:"merged" yaml:"merged"`
	Open   int           `json:"open" yaml:"open"`
}

type TestingSummary struct {
	Tests     []TestActivity `json:"tests" yaml:"tests"`
	TotalTime float64        `json:"total_time" yaml:"total_time"`
	Passed    int            `json:"passed" yaml:"passed"`
	Failed    int            `json:"failed" yaml:"failed"`
}

type SupportSummary struct {
	Support   []SupportTicket `json:"support" yaml:"support"`
	TotalTime float64         `json:"total_time" yaml:"total_time"`
	Resolved  int             `json:"resolved" yaml:"resolved"`
}

type IssueSummary struct {
	Issues            []ProductionIssue `json:"issues" yaml:"issues"`
	Total             int               `json:"total" yaml:"total"`
	Critical          int               `json:"critical" yaml:"critical"`
	Resolved          int               `json:"resolved" yaml:"resolved"`
	AvgResolutionTime float64           `json:"avg_resolution_time" yaml:"avg_resolution_time"`
}
