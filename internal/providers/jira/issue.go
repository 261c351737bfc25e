package jira

import (
	"encoding/json"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/teams"
	"strings"
	"time"
)

const (
	unassigned      = "Unassigned"
	defaultPriority = "Medium"
	unknown         = "Unknown"
)

type searchResponse struct {
	Issues []issue `json:"issues"`
}

type issue struct {
	Key    string `json:"key"`
	Fields fields `json:"fields"`
}

type named struct {
	Name string `json:"name"`
}

type person struct {
	DisplayName string `json:"displayName"`
}

type fields struct {
	Summary        string          `json:"summary"`
	IssueType      *named          `json:"issuetype"`
	Status         *named          `json:"status"`
	Priority       *named          `json:"priority"`
	Assignee       *person         `json:"assignee"`
	Reporter       *person         `json:"reporter"`
	Created        string          `json:"created"`
	ResolutionDate string          `json:"resolutiondate"`
	TimeSpent      *float64        `json:"timespent"`
	Labels         []string        `json:"labels"`
	Components     []named         `json:"components"`
	IssueLinks     []issueLink     `json:"issuelinks"`
	StoryPoints    *float64        `json:"customfield_10016"`
	Customer       json.RawMessage `json:"customfield_10000"`
	Team           json.RawMessage `json:"customfield_10001"`
}

type issueLink struct {
	OutwardIssue *struct {
		Fields struct {
			IssueType named `json:"issuetype"`
		} `json:"fields"`
	} `json:"outwardIssue"`
}

func (c *Client) toStory(is issue) models.UserStory {
	f := is.Fields
	return models.UserStory{
		ID:          is.Key,
		Title:       f.Summary,
		Type:        nameOf(f.IssueType, ""),
		Status:      nameOf(f.Status, ""),
		Assignee:    personOf(f.Assignee, unassigned),
		Team:        c.team(f),
		CreatedDate: datePart(f.Created),
		TimeSpent:   hours(f.TimeSpent),
		StoryPoints: valueOr(f.StoryPoints, 0),
		Priority:    nameOf(f.Priority, defaultPriority),
	}
}

func (c *Client) toTest(is issue) models.TestActivity {
	f := is.Fields

	testType := "Automated Test"
	if strings.Contains(strings.ToLower(f.Summary), "manual") {
		testType = "Manual Test"
	}

	status := models.TestStatusInProgress
	switch nameOf(f.Status, "") {
	case "Done":
		status = models.TestStatusPassed
	case "Failed":
		status = models.TestStatusFailed
	}

	return models.TestActivity{
		ID:          is.Key,
		Type:        testType,
		Description: f.Summary,
		Status:      status,
		Tester:      personOf(f.Assignee, unassigned),
		Team:        c.team(f),
		Date:        datePart(f.Created),
		TimeSpent:   hours(f.TimeSpent),
		TestCases:   1,
		BugsFound:   linkedBugs(f.IssueLinks),
	}
}

func (c *Client) toSupportTicket(is issue) models.SupportTicket {
	f := is.Fields

	customer := rawText(f.Customer)
	if customer == "" {
		customer = unknown
	}

	return models.SupportTicket{
		ID:          is.Key,
		Type:        "User Query",
		Description: f.Summary,
		Status:      nameOf(f.Status, ""),
		Assignee:    personOf(f.Assignee, unassigned),
		Team:        c.team(f),
		Date:        datePart(f.Created),
		TimeSpent:   hours(f.TimeSpent),
		Priority:    nameOf(f.Priority, defaultPriority),
		Customer:    customer,
	}
}

func (c *Client) toProductionIssue(is issue) models.ProductionIssue {
	f := is.Fields

	var resolution *float64
	created, errCreated := parseTime(f.Created)
	resolved, errResolved := parseTime(f.ResolutionDate)
	if errCreated == nil && errResolved == nil {
		h := resolved.Sub(created).Hours()
		resolution = &h
	}

	return models.ProductionIssue{
		ID:             is.Key,
		Title:          f.Summary,
		Severity:       nameOf(f.Priority, defaultPriority),
		Status:         nameOf(f.Status, ""),
		ReportedBy:     personOf(f.Reporter, unknown),
		Assignee:       personOf(f.Assignee, unassigned),
		Team:           c.team(f),
		ReportedDate:   datePart(f.Created),
		TimeSpent:      hours(f.TimeSpent),
		ResolutionTime: resolution,
		Impact:         nameOf(f.Priority, defaultPriority),
	}
}

// team resolves the owning team from labels, then the team custom field,
// then components.
func (c *Client) team(f fields) string {
	if team, ok := teams.Match(c.teams, f.Labels...); ok {
		return team
	}
	if team := rawText(f.Team); team != "" {
		return team
	}
	components := make([]string, 0, len(f.Components))
	for _, comp := range f.Components {
		components = append(components, comp.Name)
	}
	if team, ok := teams.Match(c.teams, components...); ok {
		return team
	}
	return teams.Fallback(c.teams)
}

func linkedBugs(links []issueLink) int {
	n := 0
	for _, l := range links {
		if l.OutwardIssue != nil && l.OutwardIssue.Fields.IssueType.Name == "Bug" {
			n++
		}
	}
	return n
}

func nameOf(n *named, fallback string) string {
	if n == nil || n.Name == "" {
		return fallback
	}
	return n.Name
}

func personOf(p *person, fallback string) string {
	if p == nil || p.DisplayName == "" {
		return fallback
	}
	return p.DisplayName
}

// hours converts Jira's timespent seconds.
func hours(seconds *float64) float64 {
	if seconds == nil {
		return 0
	}
	return *seconds / 3600
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func datePart(ts string) string {
	if len(ts) < len(models.DateLayout) {
		return ts
	}
	return ts[:len(models.DateLayout)]
}

var timeLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	time.RFC3339Nano,
	time.RFC3339,
}

func parseTime(ts string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, ts); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// rawText renders a custom field that may be a string or an option object.
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var opt struct {
		Value string `json:"value"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(raw, &opt); err == nil {
		if opt.Value != "" {
			return opt.Value
		}
		if opt.Name != "" {
			return opt.Name
		}
	}

	return string(raw)
}
