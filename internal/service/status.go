package service

import (
	"context"
	"log/slog"
	"productivity-tracker/internal/apperrors"
	"productivity-tracker/internal/config"
	"productivity-tracker/internal/domain/models"
)

type Toggle interface {
	Enabled() bool
}

// LoadState is a SnapshotProvider that knows whether a load has succeeded.
type LoadState interface {
	SnapshotProvider
	Loaded() bool
}

type StatusService struct {
	log        *slog.Logger
	store      LoadState
	dataSource string
	teams      []string
	jira       Toggle
	gitlab     Toggle
	confluence Toggle
}

func NewStatusService(
	log *slog.Logger,
	store LoadState,
	dataSource string,
	teams []string,
	jira, gitlab, confluence Toggle) *StatusService {
	return &StatusService{
		log:        log,
		store:      store,
		dataSource: dataSource,
		teams:      teams,
		jira:       jira,
		gitlab:     gitlab,
		confluence: confluence,
	}
}

func (s *StatusService) Status(ctx context.Context) models.SourceStatus {
	teams := s.teams
	if teams == nil {
		teams = []string{}
	}

	return models.SourceStatus{
		DataSource:        s.dataSource,
		UseMockData:       s.dataSource == config.SourceMock,
		JiraEnabled:       s.jira.Enabled(),
		GitLabEnabled:     s.gitlab.Enabled(),
		ConfluenceEnabled: s.confluence.Enabled(),
		Teams:             teams,
		LoadedAt:          s.store.Snapshot().LoadedAt,
	}
}

// Health reports ErrNoSnapshot until the first dataset has been published.
func (s *StatusService) Health(ctx context.Context) error {
	if !s.store.Loaded() {
		return apperrors.ErrNoSnapshot
	}
	return nil
}
