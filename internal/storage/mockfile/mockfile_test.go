package mockfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-tracker/internal/lib/logger"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "data.json", `{
		"user_stories": [
			{"id": "US-1", "title": "Login", "status": "Done", "assignee": "Alice Johnson", "team": "Team Alpha", "created_date": "2024-03-01", "time_spent": 8, "story_points": 3, "priority": "High"},
			{"id": "US-2", "title": "No time", "status": "Done", "assignee": "Alice Johnson", "team": "Team Alpha", "created_date": "2024-03-01"},
			{"id": "US-3", "title": "Null time", "status": "Done", "assignee": "Bob Smith", "created_date": "2024-03-01", "time_spent": null}
		],
		"pull_requests": [
			{"id": "PR-1", "title": "Add login", "status": "Merged", "author": "Alice Johnson", "reviewer": "Bob Smith", "team": "Team Alpha", "created_date": "2024-03-02", "time_spent": 20, "commits": 3}
		],
		"testing": [
			{"id": "T-1", "type": "Automated Test", "status": "Passed", "tester": "Eve Chen", "team": "Team Alpha", "date": "2024-03-03", "time_spent": 2.5, "test_cases": 12, "bugs_found": 1}
		],
		"prod_support": [
			{"id": "S-1", "status": "Resolved", "assignee": "Frank Wilson", "team": "Team Beta", "date": "2024-03-04", "time_spent": "lots"}
		],
		"prod_issues": [
			{"id": "PI-1", "title": "Outage", "severity": "Critical", "status": "Resolved", "assignee": "Diana Martinez", "team": "Team Beta", "reported_date": "2024-03-05", "time_spent": 6, "resolution_time": 4.5},
			{"id": "PI-2", "title": "Open", "status": "Open", "assignee": "Diana Martinez", "reported_date": "2024-03-05", "time_spent": 1}
		]
	}`)

	ds, err := New(path, logger.Discard()).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SourceName, ds.Source)
	require.Len(t, ds.Stories, 1)
	assert.Equal(t, "US-1", ds.Stories[0].ID)
	assert.Equal(t, 3.0, ds.Stories[0].StoryPoints)

	require.Len(t, ds.PullRequests, 1)
	assert.Equal(t, 20.0, ds.PullRequests[0].TimeSpent)

	require.Len(t, ds.Tests, 1)
	assert.Equal(t, 12, ds.Tests[0].TestCases)

	assert.Empty(t, ds.Support)

	require.Len(t, ds.Issues, 1)
	require.NotNil(t, ds.Issues[0].ResolutionTime)
	assert.Equal(t, 4.5, *ds.Issues[0].ResolutionTime)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "data.yaml", `
user_stories:
  - id: US-1
    title: Login
    status: In Progress
    assignee: Alice Johnson
    team: Team Alpha
    created_date: 2024-03-01
    time_spent: 5
prod_issues:
  - id: PI-1
    severity: Low
    status: Open
    assignee: Bob Smith
    reported_date: "2024-03-02"
    time_spent: 1
    resolution_time: null
`)

	ds, err := New(path, logger.Discard()).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Stories, 1)
	assert.Equal(t, "2024-03-01", ds.Stories[0].CreatedDate)
	assert.Equal(t, "In Progress", ds.Stories[0].Status)

	require.Len(t, ds.Issues, 1)
	assert.Nil(t, ds.Issues[0].ResolutionTime)
	assert.Empty(t, ds.PullRequests)
}

func TestLoadYAMLUnquotedDatesPassValidation(t *testing.T) {
	path := writeFile(t, "data.yml", `
user_stories:
  - {id: US-1, status: Done, assignee: Alice Johnson, created_date: 2024-03-01, time_spent: 5}
  - {id: US-2, status: Done, assignee: Bob Smith, created_date: "2024-03-02", time_spent: 3}
testing:
  - {id: T-1, status: Passed, tester: Eve Chen, date: 2024-03-03, time_spent: 2}
`)

	ds, err := New(path, logger.Discard()).Load(context.Background())
	require.NoError(t, err)

	var dropped []error
	valid := ds.Validated(func(err error) { dropped = append(dropped, err) })

	assert.Empty(t, dropped)
	require.Len(t, valid.Stories, 2)
	assert.Equal(t, "2024-03-01", valid.Stories[0].CreatedDate)
	assert.Equal(t, "2024-03-02", valid.Stories[1].CreatedDate)
	require.Len(t, valid.Tests, 1)
	assert.Equal(t, "2024-03-03", valid.Tests[0].Date)
}

func TestLoadDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "absent.json")},
		{name: "broken json", path: writeFile(t, "broken.json", `{"user_stories": [`)},
		{name: "unsupported extension", path: writeFile(t, "data.csv", "id,status")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := New(tt.path, logger.Discard()).Load(context.Background())
			require.NoError(t, err)

			assert.Equal(t, SourceName, ds.Source)
			assert.Zero(t, ds.Counts())
		})
	}
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(writeFile(t, "data.json", `{}`), logger.Discard()).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
