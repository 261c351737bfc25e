package repo

import (
	"context"
	"fmt"
	"github.com/jmoiron/sqlx"
	"productivity-tracker/internal/domain/models"
	"time"
)

// SourceName identifies datasets read from the warehouse.
const SourceName = "postgres"

type WarehouseRepo struct {
	storage *sqlx.DB
}

func NewWarehouseRepo(storage *sqlx.DB) *WarehouseRepo {
	return &WarehouseRepo{storage: storage}
}

// Load reads all five record tables into one dataset.
func (r *WarehouseRepo) Load(ctx context.Context) (models.Dataset, error) {
	const op = "repo.warehouse.Load"

	ds := models.Dataset{Source: SourceName}

	var err error
	if ds.Stories, err = r.GetUserStories(ctx); err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", op, err)
	}
	if ds.PullRequests, err = r.GetPullRequests(ctx); err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", op, err)
	}
	if ds.Tests, err = r.GetTestActivities(ctx); err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", op, err)
	}
	if ds.Support, err = r.GetSupportTickets(ctx); err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", op, err)
	}
	if ds.Issues, err = r.GetProductionIssues(ctx); err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", op, err)
	}
	ds.LoadedAt = time.Now()

	return ds, nil
}

func (r *WarehouseRepo) GetUserStories(ctx context.Context) ([]models.UserStory, error) {
	const op = "repo.warehouse.GetUserStories"

	query := `
		SELECT id, title, type, status, assignee, team,
			to_char(created_date, 'YYYY-MM-DD') AS created_date,
			time_spent, story_points, priority
		FROM user_stories
		ORDER BY created_date DESC, id
	`

	stories := []models.UserStory{}
	if err := r.storage.SelectContext(ctx, &stories, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stories, nil
}

func (r *WarehouseRepo) GetPullRequests(ctx context.Context) ([]models.PullRequest, error) {
	const op = "repo.warehouse.GetPullRequests"

	query := `
		SELECT id, title, status, author, reviewer, team,
			to_char(created_date, 'YYYY-MM-DD') AS created_date,
			time_spent, lines_added, lines_deleted, comments, commits
		FROM pull_requests
		ORDER BY created_date DESC, id
	`

	prs := []models.PullRequest{}
	if err := r.storage.SelectContext(ctx, &prs, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return prs, nil
}

func (r *WarehouseRepo) GetTestActivities(ctx context.Context) ([]models.TestActivity, error) {
	const op = "repo.warehouse.GetTestActivities"

	query := `
		SELECT id, type, description, status, tester, team,
			to_char(date, 'YYYY-MM-DD') AS date,
			time_spent, test_cases, bugs_found
		FROM test_activities
		ORDER BY date DESC, id
	`

	tests := []models.TestActivity{}
	if err := r.storage.SelectContext(ctx, &tests, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tests, nil
}

func (r *WarehouseRepo) GetSupportTickets(ctx context.Context) ([]models.SupportTicket, error) {
	const op = "repo.warehouse.GetSupportTickets"

	query := `
		SELECT id, type, description, status, assignee, team,
			to_char(date, 'YYYY-MM-DD') AS date,
			time_spent, priority, customer
		FROM support_tickets
		ORDER BY date DESC, id
	`

	tickets := []models.SupportTicket{}
	if err := r.storage.SelectContext(ctx, &tickets, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tickets, nil
}

func (r *WarehouseRepo) GetProductionIssues(ctx context.Context) ([]models.ProductionIssue, error) {
	const op = "repo.warehouse.GetProductionIssues"

	query := `
		SELECT id, title, severity, status, reported_by, assignee, team,
			to_char(reported_date, 'YYYY-MM-DD') AS reported_date,
			time_spent, resolution_time, impact, affected_users
		FROM production_issues
		ORDER BY reported_date DESC, id
	`

	issues := []models.ProductionIssue{}
	if err := r.storage.SelectContext(ctx, &issues, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return issues, nil
}
