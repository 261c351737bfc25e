package models

type ProductionIssue struct {
	ID           string  `db:"id" json:"id" yaml:"id"`
	Title        string  `db:"title" json:"title" yaml:"title"`
	Severity     string  `db:"severity" json:"severity" yaml:"severity"`
	Status       string  `db:"status" json:"status" yaml:"status"`
	ReportedBy   string  `db:"reported_by" json:"reported_by" yaml:"reported_by"`
	Assignee     string  `db:"assignee" json:"assignee" yaml:"assignee"`
	Team         string  `db:"team" json:"team" yaml:"team"`
	ReportedDate string  `db:"reported_date" json:"reported_date" yaml:"reported_date"`
	TimeSpent    float64 `db:"time_spent" json:"time_spent" yaml:"time_spent"`
	// ResolutionTime is in hours; nil while the issue is open.
	ResolutionTime *float64 `db:"resolution_time" json:"resolution_time" yaml:"resolution_time"`
	Impact         string   `db:"impact" json:"impact" yaml:"impact"`
	AffectedUsers  int      `db:"affected_users" json:"affected_users" yaml:"affected_users"`
}

const (
	IssueSeverityCritical = "Critical"
	IssueStatusResolved   = "Resolved"
	IssueStatusClosed     = "Closed"
)
