package models

import "time"

type SourceStatus struct {
	DataSource        string    `json:"data_source"`
	UseMockData       bool      `json:"use_mock_data"`
	JiraEnabled       bool      `json:"jira_enabled"`
	GitLabEnabled     bool      `json:"gitlab_enabled"`
	ConfluenceEnabled bool      `json:"confluence_enabled"`
	Teams             []string  `json:"teams"`
	LoadedAt          time.Time `json:"loaded_at"`
}

type ReloadResult struct {
	Source   string        `json:"source"`
	LoadedAt time.Time     `json:"loaded_at"`
	Counts   DatasetCounts `json:"counts"`
}

type Retrospective struct {
	Title  string `json:"title"`
	Date   string `json:"date"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

type DocumentationStats struct {
	Enabled            bool            `json:"enabled"`
	TotalPages         int             `json:"total_pages"`
	RecentUpdates      int             `json:"recent_updates"`
	TeamPages          map[string]int  `json:"team_pages"`
	ActiveContributors int             `json:"active_contributors"`
	Retrospectives     []Retrospective `json:"retrospectives"`
}

type PipelineStats struct {
	Enabled        bool    `json:"enabled"`
	TotalPipelines int     `json:"total_pipelines"`
	Successful     int     `json:"successful"`
	Failed         int     `json:"failed"`
	AvgDuration    float64 `json:"avg_duration"`
}
