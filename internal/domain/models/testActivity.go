package models

type TestActivity struct {
	ID          string  `db:"id" json:"id" yaml:"id"`
	Type        string  `db:"type" json:"type" yaml:"type"`
	Description string  `db:"description" json:"description" yaml:"description"`
	Status      string  `db:"status" json:"status" yaml:"status"`
	Tester      string  `db:"tester" json:"tester" yaml:"tester"`
	Team        string  `db:"team" json:"team" yaml:"team"`
	Date        string  `db:"date" json:"date" yaml:"date"`
	TimeSpent   float64 `db:"time_spent" json:"time_spent" yaml:"time_spent"`
	TestCases   int     `db:"test_cases" json:"test_cases" yaml:"test_cases"`
	BugsFound   int     `db:"bugs_found" json:"bugs_found" yaml:"bugs_found"`
}

const (
	TestStatusPassed     = "Passed"
	TestStatusFailed     = "Failed"
	TestStatusInProgress = "In Progress"
)
