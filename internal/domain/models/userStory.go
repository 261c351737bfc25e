package models

type UserStory struct {
	ID          string  `db:"id" json:"id" yaml:"id"`
	Title       string  `db:"title" json:"title" yaml:"title"`
	Type        string  `db:"type" json:"type,omitempty" yaml:"type"`
	Status      string  `db:"status" json:"status" yaml:"status"`
	Assignee    string  `db:"assignee" json:"assignee" yaml:"assignee"`
	Team        string  `db:"team" json:"team" yaml:"team"`
	CreatedDate string  `db:"created_date" json:"created_date" yaml:"created_date"`
	TimeSpent   float64 `db:"time_spent" json:"time_spent" yaml:"time_spent"`
	StoryPoints float64 `db:"story_points" json:"story_points" yaml:"story_points"`
	Priority    string  `db:"priority" json:"priority" yaml:"priority"`
}

const (
	StoryStatusDone       = "Done"
	StoryStatusInProgress = "In Progress"
)
