package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-tracker/internal/apperrors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("JIRA_URL", "")
	t.Setenv("JIRA_API_TOKEN", "")
	t.Setenv("GITLAB_TOKEN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Team Alpha", "Team Beta", "Team Gamma"}, cfg.Teams)
	assert.Len(t, cfg.TeamMembers, 6)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
	assert.Equal(t, "https://gitlab.com", cfg.GitLab.URL)
	assert.True(t, cfg.UseMockData())

	src, err := cfg.ResolveDataSource()
	require.NoError(t, err)
	assert.Equal(t, SourceMock, src)
}

func TestLoadLists(t *testing.T) {
	t.Setenv("TEAMS", " Core , Platform ,,")
	t.Setenv("GITLAB_PROJECT_IDS", "12, 34")
	t.Setenv("CACHE_EXPIRY", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Core", "Platform"}, cfg.Teams)
	assert.Equal(t, []string{"12", "34"}, cfg.GitLab.ProjectIDs)
	assert.Equal(t, time.Minute, cfg.CacheTTL())
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("DATA_SOURCE", "ftp")

	_, err := Load()
	assert.ErrorIs(t, err, apperrors.ErrUnknownDataSource)
}

func TestResolveDataSource(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "auto without credentials",
			cfg:  Config{DataSource: SourceAuto},
			want: SourceMock,
		},
		{
			name: "auto with partial credentials",
			cfg: Config{
				DataSource: SourceAuto,
				Jira:       JiraConfig{URL: "https://jira.example.com", APIToken: "t"},
			},
			want: SourceMock,
		},
		{
			name: "auto with all credentials",
			cfg: Config{
				DataSource: SourceAuto,
				Jira:       JiraConfig{URL: "https://jira.example.com", APIToken: "t"},
				GitLab:     GitLabConfig{Token: "g"},
			},
			want: SourceLive,
		},
		{
			name: "explicit postgres",
			cfg:  Config{DataSource: "Postgres"},
			want: SourcePostgres,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.ResolveDataSource()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
