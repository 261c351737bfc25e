package models

type PullRequest struct {
	ID           string  `db:"id" json:"id" yaml:"id"`
	Title        string  `db:"title" json:"title" yaml:"title"`
	Status       string  `db:"status" json:"status" yaml:"status"`
	Author       string  `db:"author" json:"author" yaml:"author"`
	Reviewer     string  `db:"reviewer" json:"reviewer" yaml:"reviewer"`
	Team         string  `db:"team" json:"team" yaml:"team"`
	CreatedDate  string  `db:"created_date" json:"created_date" yaml:"created_date"`
	TimeSpent    float64 `db:"time_spent" json:"time_spent" yaml:"time_spent"`
	LinesAdded   int     `db:"lines_added" json:"lines_added" yaml:"lines_added"`
	LinesDeleted int     `db:"lines_deleted" json:"lines_deleted" yaml:"lines_deleted"`
	Comments     int     `db:"comments" json:"comments" yaml:"comments"`
	Commits      int     `db:"commits" json:"commits" yaml:"commits"`
}

const (
	PRStatusMerged = "Merged"
	PRStatusOpen   = "Open"
	PRStatusClosed = "Closed"
)
