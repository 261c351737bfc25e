package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-tracker/internal/apperrors"
)

func hours(v float64) *float64 { return &v }

func TestUserStoryValidate(t *testing.T) {
	tests := []struct {
		name    string
		story   UserStory
		wantErr error
	}{
		{"valid", UserStory{ID: "US-1", CreatedDate: "2024-03-01", TimeSpent: 4}, nil},
		{"zero time is valid", UserStory{ID: "US-2", CreatedDate: "2024-03-01"}, nil},
		{"missing id", UserStory{CreatedDate: "2024-03-01", TimeSpent: 1}, apperrors.ErrRecordIDRequired},
		{"negative time", UserStory{ID: "US-3", CreatedDate: "2024-03-01", TimeSpent: -1}, apperrors.ErrInvalidTimeSpent},
		{"nan time", UserStory{ID: "US-4", CreatedDate: "2024-03-01", TimeSpent: math.NaN()}, apperrors.ErrInvalidTimeSpent},
		{"bad date", UserStory{ID: "US-5", CreatedDate: "03/01/2024", TimeSpent: 1}, apperrors.ErrInvalidDate},
		{"timestamp date", UserStory{ID: "US-6", CreatedDate: "2024-03-01T10:00:00Z", TimeSpent: 1}, apperrors.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.story.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductionIssueValidateResolution(t *testing.T) {
	issue := ProductionIssue{ID: "PI-1", ReportedDate: "2024-03-01", TimeSpent: 2}
	assert.NoError(t, issue.Validate())

	issue.ResolutionTime = hours(5.5)
	assert.NoError(t, issue.Validate())

	issue.ResolutionTime = hours(-3)
	assert.ErrorIs(t, issue.Validate(), apperrors.ErrInvalidResolution)
}

func TestDatasetValidatedDropsInvalidRecords(t *testing.T) {
	ds := Dataset{
		Stories: []UserStory{
			{ID: "US-1", CreatedDate: "2024-03-01", TimeSpent: 3},
			{ID: "", CreatedDate: "2024-03-01", TimeSpent: 3},
		},
		PullRequests: []PullRequest{{ID: "PR-1", CreatedDate: "bad", TimeSpent: 1}},
		Tests:        []TestActivity{{ID: "T-1", Date: "2024-03-02", TimeSpent: 1}},
		Support:      []SupportTicket{{ID: "S-1", Date: "2024-03-02", TimeSpent: -2}},
		Issues:       []ProductionIssue{{ID: "PI-1", ReportedDate: "2024-03-02", TimeSpent: 1}},
		Source:       "mock",
	}

	var rejected []error
	clean := ds.Validated(func(err error) { rejected = append(rejected, err) })

	require.Len(t, rejected, 3)
	assert.Len(t, clean.Stories, 1)
	assert.Empty(t, clean.PullRequests)
	assert.Len(t, clean.Tests, 1)
	assert.Empty(t, clean.Support)
	assert.Len(t, clean.Issues, 1)
	assert.Equal(t, "mock", clean.Source)
	assert.Equal(t, DatasetCounts{Stories: 1, Tests: 1, Issues: 1}, clean.Counts())
}
