package repo

import (
	"context"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testpg "productivity-tracker/internal/tests/postgres"
)

func TestWarehouseRepo_Load(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	ctx := context.Background()
	db, teardown, err := testpg.Setup(ctx)
	require.NoError(t, err)
	defer teardown()

	seed := []string{
		`INSERT INTO user_stories (id, title, status, assignee, team, created_date, time_spent, story_points)
			VALUES ('US-1', 'Login', 'Done', 'Alice Johnson', 'Team Alpha', '2024-03-01', 12.5, 3),
			       ('US-2', 'Logout', 'In Progress', 'Bob Smith', 'Team Beta', '2024-03-02', 4, 1)`,
		`INSERT INTO pull_requests (id, title, status, author, reviewer, team, created_date, time_spent, commits)
			VALUES ('PR-1', 'Add login', 'Merged', 'Alice Johnson', 'Bob Smith', 'Team Alpha', '2024-03-03', 6, 4)`,
		`INSERT INTO test_activities (id, type, status, tester, team, date, time_spent, test_cases)
			VALUES ('T-1', 'Automated Test', 'Passed', 'Eve Chen', 'Team Alpha', '2024-03-04', 2, 10)`,
		`INSERT INTO support_tickets (id, type, status, assignee, team, date, time_spent, customer)
			VALUES ('S-1', 'Bug Report', 'Resolved', 'Frank Wilson', 'Team Gamma', '2024-03-05', 1.5, 'Acme')`,
		`INSERT INTO production_issues (id, title, severity, status, assignee, team, reported_date, time_spent, resolution_time)
			VALUES ('PI-1', 'Outage', 'Critical', 'Resolved', 'Diana Martinez', 'Team Beta', '2024-03-06', 8, 3.5),
			       ('PI-2', 'Slow page', 'Low', 'Open', 'Diana Martinez', 'Team Beta', '2024-03-07', 1, NULL)`,
	}
	for _, q := range seed {
		_, err := db.ExecContext(ctx, q)
		require.NoError(t, err)
	}

	ds, err := NewWarehouseRepo(db).Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, SourceName, ds.Source)
	assert.False(t, ds.LoadedAt.IsZero())

	require.Len(t, ds.Stories, 2)
	assert.Equal(t, "US-2", ds.Stories[0].ID)
	assert.Equal(t, "2024-03-01", ds.Stories[1].CreatedDate)
	assert.Equal(t, 12.5, ds.Stories[1].TimeSpent)

	require.Len(t, ds.PullRequests, 1)
	assert.Equal(t, 4, ds.PullRequests[0].Commits)

	require.Len(t, ds.Tests, 1)
	assert.Equal(t, "2024-03-04", ds.Tests[0].Date)

	require.Len(t, ds.Support, 1)
	assert.Equal(t, "Acme", ds.Support[0].Customer)

	require.Len(t, ds.Issues, 2)
	assert.Nil(t, ds.Issues[0].ResolutionTime)
	require.NotNil(t, ds.Issues[1].ResolutionTime)
	assert.Equal(t, 3.5, *ds.Issues[1].ResolutionTime)
}
