package models

type SupportTicket struct {
	ID          string  `db:"id" json:"id" yaml:"id"`
	Type        string  `db:"type" json:"type" yaml:"type"`
	Description string  `db:"description" json:"description" yaml:"description"`
	Status      string  `db:"status" json:"status" yaml:"status"`
	Assignee    string  `db:"assignee" json:"assignee" yaml:"assignee"`
	Team        string  `db:"team" json:"team" yaml:"team"`
	Date        string  `db:"date" json:"date" yaml:"date"`
	TimeSpent   float64 `db:"time_spent" json:"time_spent" yaml:"time_spent"`
	Priority    string  `db:"priority" json:"priority" yaml:"priority"`
	Customer    string  `db:"customer" json:"customer" yaml:"customer"`
}

const SupportStatusResolved = "Resolved"
