package config

import (
	"errors"
	"fmt"
	"io/fs"
	"productivity-tracker/internal/apperrors"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	SourceAuto     = "auto"
	SourceMock     = "mock"
	SourceLive     = "live"
	SourcePostgres = "postgres"
)

type Config struct {
	Env           string        `env:"ENV" env-default:"local"`
	DataSource    string        `env:"DATA_SOURCE" env-default:"auto"`
	MockDataPath  string        `env:"MOCK_DATA_PATH" env-default:"data/mock_data.json"`
	Teams         []string      `env:"TEAMS" env-default:"Team Alpha,Team Beta,Team Gamma"`
	TeamMembers   []string      `env:"TEAM_MEMBERS" env-default:"Alice Johnson,Bob Smith,Charlie Davis,Diana Martinez,Eve Chen,Frank Wilson"`
	CacheExpiry   int           `env:"CACHE_EXPIRY" env-default:"300"`
	RefreshCron   string        `env:"REFRESH_CRON"`
	ClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" env-default:"15s"`

	Server     HTTPServer       `env-prefix:"SERVER_"`
	Postgres   PostgresConfig   `env-prefix:"PG_"`
	Jira       JiraConfig       `env-prefix:"JIRA_"`
	GitLab     GitLabConfig     `env-prefix:"GITLAB_"`
	Confluence ConfluenceConfig `env-prefix:"CONFLUENCE_"`
}

type HTTPServer struct {
	Port    string        `env:"PORT" env-default:"8000"`
	Timeout time.Duration `env:"TIMEOUT" env-default:"10s"`
}

type PostgresConfig struct {
	Host     string `env:"HOST" env-default:"localhost"`
	Port     string `env:"PORT" env-default:"5432"`
	User     string `env:"USER" env-default:"postgres"`
	Password string `env:"PASSWORD" env-default:"postgres"`
	DbName   string `env:"DBNAME" env-default:"productivity"`
	SslMode  string `env:"SSLMODE" env-default:"disable"`
}

type JiraConfig struct {
	URL        string `env:"URL"`
	Email      string `env:"EMAIL"`
	APIToken   string `env:"API_TOKEN"`
	ProjectKey string `env:"PROJECT_KEY"`
}

type GitLabConfig struct {
	URL        string   `env:"URL" env-default:"https://gitlab.com"`
	Token      string   `env:"TOKEN"`
	ProjectIDs []string `env:"PROJECT_IDS"`
}

type ConfluenceConfig struct {
	URL      string `env:"URL"`
	Email    string `env:"EMAIL"`
	APIToken string `env:"API_TOKEN"`
	SpaceKey string `env:"SPACE_KEY"`
}

// CacheTTL is the lifetime of cached upstream responses.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheExpiry) * time.Second
}

// UseMockData reports whether the upstream APIs are not configured well enough
// to serve live data.
func (c *Config) UseMockData() bool {
	return c.Jira.URL == "" || c.Jira.APIToken == "" || c.GitLab.Token == ""
}

// ResolveDataSource turns DATA_SOURCE into a concrete source, resolving auto.
func (c *Config) ResolveDataSource() (string, error) {
	switch src := strings.ToLower(strings.TrimSpace(c.DataSource)); src {
	case SourceAuto, "":
		if c.UseMockData() {
			return SourceMock, nil
		}
		return SourceLive, nil
	case SourceMock, SourceLive, SourcePostgres:
		return src, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownDataSource, c.DataSource)
	}
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}

	cfg.Teams = trimAll(cfg.Teams)
	cfg.TeamMembers = trimAll(cfg.TeamMembers)
	cfg.GitLab.ProjectIDs = trimAll(cfg.GitLab.ProjectIDs)

	if _, err := cfg.ResolveDataSource(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// DSN is the lib/pq connection string for the warehouse database.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DbName, p.SslMode)
}
