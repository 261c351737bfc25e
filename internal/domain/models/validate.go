package models

import (
	"fmt"
	"math"
	"productivity-tracker/internal/apperrors"
	"time"
)

// DateLayout is the calendar-day format shared by every record date field.
const DateLayout = "2006-01-02"

type Validator interface {
	Validate() error
}

func (s UserStory) Validate() error {
	if err := validateRecord(s.ID, s.CreatedDate, s.TimeSpent); err != nil {
		return fmt.Errorf("user story %q: %w", s.ID, err)
	}
	return nil
}

func (pr PullRequest) Validate() error {
	if err := validateRecord(pr.ID, pr.CreatedDate, pr.TimeSpent); err != nil {
		return fmt.Errorf("pull request %q: %w", pr.ID, err)
	}
	return nil
}

func (t TestActivity) Validate() error {
	if err := validateRecord(t.ID, t.Date, t.TimeSpent); err != nil {
		return fmt.Errorf("test activity %q: %w", t.ID, err)
	}
	return nil
}

func (s SupportTicket) Validate() error {
	if err := validateRecord(s.ID, s.Date, s.TimeSpent); err != nil {
		return fmt.Errorf("support ticket %q: %w", s.ID, err)
	}
	return nil
}

func (i ProductionIssue) Validate() error {
	if err := validateRecord(i.ID, i.ReportedDate, i.TimeSpent); err != nil {
		return fmt.Errorf("production issue %q: %w", i.ID, err)
	}
	if i.ResolutionTime != nil && !validHours(*i.ResolutionTime) {
		return fmt.Errorf("production issue %q: %w", i.ID, apperrors.ErrInvalidResolution)
	}
	return nil
}

func validateRecord(id, date string, timeSpent float64) error {
	if id == "" {
		return apperrors.ErrRecordIDRequired
	}
	if !validHours(timeSpent) {
		return apperrors.ErrInvalidTimeSpent
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, date)
	}
	return nil
}

func validHours(h float64) bool {
	return h >= 0 && !math.IsInf(h, 0) && !math.IsNaN(h)
}

// KeepValid returns the records that pass validation. reject is called
// for every dropped record and may be nil.
func KeepValid[T Validator](records []T, reject func(error)) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if err := r.Validate(); err != nil {
			if reject != nil {
				reject(err)
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// Validated returns a copy of d holding only valid records.
func (d Dataset) Validated(reject func(error)) Dataset {
	return Dataset{
		Stories:      KeepValid(d.Stories, reject),
		PullRequests: KeepValid(d.PullRequests, reject),
		Tests:        KeepValid(d.Tests, reject),
		Support:      KeepValid(d.Support, reject),
		Issues:       KeepValid(d.Issues, reject),
		Source:       d.Source,
		LoadedAt:     d.LoadedAt,
	}
}
