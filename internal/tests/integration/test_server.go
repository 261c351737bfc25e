package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"productivity-tracker/internal/app"
	"productivity-tracker/internal/config"
	"productivity-tracker/internal/lib/logger"
	"time"
)

var roster = []string{"Alice Johnson", "Bob Smith", "Charlie Davis", "Diana Martinez", "Eve Chen", "Frank Wilson"}

type TestServer struct {
	App    *app.App
	Server *httptest.Server
	Today  string
	dir    string
}

// NewTestServer boots the whole application on a mock dataset whose dates
// are relative to today.
func NewTestServer() (*TestServer, error) {
	dir, err := os.MkdirTemp("", "productivity-tracker-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}

	path := filepath.Join(dir, "mock_data.json")
	today := time.Now()
	if err := writeFixtures(path, today); err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	cfg := &config.Config{
		Env:          logger.EnvProd,
		DataSource:   config.SourceMock,
		MockDataPath: path,
		Teams:        []string{"Team Alpha", "Team Beta", "Team Gamma"},
		TeamMembers:  roster,
		CacheExpiry:  300,
		Server: config.HTTPServer{
			Port:    "0",
			Timeout: 5 * time.Second,
		},
	}

	a, err := app.New(context.Background(), logger.Discard(), cfg)
	if err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("failed to build app: %w", err)
	}

	return &TestServer{
		App:    a,
		Server: httptest.NewServer(a.Handler()),
		Today:  today.Format("2006-01-02"),
		dir:    dir,
	}, nil
}

func day(today time.Time, offset int) string {
	return today.AddDate(0, 0, -offset).Format("2006-01-02")
}

// writeFixtures stores 80 hours of work: 41 development, 4 testing,
// 30 support, 5 incidents. One story lacks time_spent and must be dropped.
func writeFixtures(path string, today time.Time) error {
	fixtures := map[string]any{
		"user_stories": []map[string]any{
			{"id": "US-1", "title": "Login", "status": "Done", "assignee": "Alice Johnson", "team": "Team Alpha", "created_date": day(today, 0), "time_spent": 14, "story_points": 3, "priority": "High"},
			{"id": "US-2", "title": "Logout", "status": "In Progress", "assignee": "Bob Smith", "team": "Team Beta", "created_date": day(today, 10), "time_spent": 7, "story_points": 1, "priority": "Low"},
			{"id": "US-3", "title": "Broken", "status": "Done", "assignee": "Bob Smith", "team": "Team Beta", "created_date": day(today, 1)},
		},
		"pull_requests": []map[string]any{
			{"id": "PR-1", "title": "Add login", "status": "Merged", "author": "Alice Johnson", "reviewer": "Bob Smith", "team": "Team Alpha", "created_date": day(today, 0), "time_spent": 20, "lines_added": 120, "lines_deleted": 10, "comments": 2, "commits": 3},
		},
		"testing": []map[string]any{
			{"id": "T-1", "type": "Automated Test", "description": "Login suite", "status": "Passed", "tester": "Eve Chen", "team": "Team Alpha", "date": day(today, 1), "time_spent": 4, "test_cases": 12, "bugs_found": 1},
		},
		"prod_support": []map[string]any{
			{"id": "S-1", "type": "User Query", "description": "Cannot log in", "status": "Resolved", "assignee": "Frank Wilson", "team": "Team Beta", "date": day(today, 0), "time_spent": 30, "priority": "High", "customer": "Acme"},
		},
		"prod_issues": []map[string]any{
			{"id": "PI-1", "title": "Outage", "severity": "Critical", "status": "Resolved", "reported_by": "Eve Chen", "assignee": "Diana Martinez", "team": "Team Beta", "reported_date": day(today, 2), "time_spent": 5, "resolution_time": 3, "impact": "High", "affected_users": 1200},
		},
	}

	body, err := json.Marshal(fixtures)
	if err != nil {
		return fmt.Errorf("failed to encode fixtures: %w", err)
	}

	if err := os.WriteFile(path, body, 0o600); err != nil {
		return fmt.Errorf("failed to write fixtures: %w", err)
	}

	return nil
}

func (s *TestServer) Close() {
	s.Server.Close()
	s.App.Close()
	os.RemoveAll(s.dir)
}
