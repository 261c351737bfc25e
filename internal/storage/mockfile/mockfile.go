// Package mockfile loads the static dataset used when no upstream API is
// configured. JSON and YAML documents are accepted.
package mockfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"productivity-tracker/internal/apperrors"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/logger/sl"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SourceName identifies datasets read from a static file.
const SourceName = "mock"

// Keys that must be present on every record of a section.
var requiredKeys = map[string][]string{
	"user_stories":  {"id", "status", "assignee", "created_date", "time_spent"},
	"pull_requests": {"id", "status", "author", "created_date", "time_spent"},
	"testing":       {"id", "status", "tester", "date", "time_spent"},
	"prod_support":  {"id", "status", "assignee", "date", "time_spent"},
	"prod_issues":   {"id", "severity", "status", "assignee", "reported_date", "time_spent"},
}

type document map[string][]map[string]json.RawMessage

type Loader struct {
	path string
	log  *slog.Logger
}

func New(path string, log *slog.Logger) *Loader {
	return &Loader{path: path, log: log}
}

// Load reads the file. A missing or unreadable file yields an empty dataset;
// the failure is logged, not returned.
func (l *Loader) Load(ctx context.Context) (models.Dataset, error) {
	const op = "storage.mockfile.Load"

	log := l.log.With(slog.String("op", op), slog.String("path", l.path))

	if err := ctx.Err(); err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", op, err)
	}

	empty := models.Dataset{Source: SourceName, LoadedAt: time.Now()}

	doc, err := l.read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Error("mock data file not found, serving empty dataset")
		} else {
			log.Error("failed to read mock data, serving empty dataset", sl.Err(err))
		}
		return empty, nil
	}

	reject := func(err error) {
		log.Warn("dropping mock record", sl.Err(err))
	}

	ds := empty
	ds.Stories = decodeSection[models.UserStory](doc, "user_stories", reject)
	ds.PullRequests = decodeSection[models.PullRequest](doc, "pull_requests", reject)
	ds.Tests = decodeSection[models.TestActivity](doc, "testing", reject)
	ds.Support = decodeSection[models.SupportTicket](doc, "prod_support", reject)
	ds.Issues = decodeSection[models.ProductionIssue](doc, "prod_issues", reject)

	log.Info("mock data loaded", slog.Any("counts", ds.Counts()))

	return ds, nil
}

func (l *Loader) read() (document, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(l.path)); ext {
	case ".json":
	case ".yaml", ".yml":
		if raw, err = yamlToJSON(raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedMockFormat, ext)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode mock data: %w", err)
	}

	return doc, nil
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var v map[string]any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	return json.Marshal(normalizeYAML(v))
}

// normalizeYAML turns the time.Time values yaml produces for unquoted dates
// back into strings: a date-only layout for midnight UTC, RFC 3339 otherwise.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeYAML(e)
		}
	case []any:
		for i, e := range t {
			t[i] = normalizeYAML(e)
		}
	case time.Time:
		if t.Equal(t.UTC().Truncate(24 * time.Hour)) {
			return t.UTC().Format(models.DateLayout)
		}
		return t.Format(time.RFC3339)
	}
	return v
}

func decodeSection[T any](doc document, section string, reject func(error)) []T {
	records := doc[section]
	out := make([]T, 0, len(records))
	for i, rec := range records {
		if err := checkKeys(rec, requiredKeys[section]); err != nil {
			reject(fmt.Errorf("%s[%d] %s: %w", section, i, recordID(rec), err))
			continue
		}

		body, err := json.Marshal(rec)
		if err != nil {
			reject(fmt.Errorf("%s[%d] %s: %w", section, i, recordID(rec), err))
			continue
		}

		var v T
		if err := json.Unmarshal(body, &v); err != nil {
			reject(fmt.Errorf("%s[%d] %s: %w", section, i, recordID(rec), err))
			continue
		}
		out = append(out, v)
	}
	return out
}

func checkKeys(rec map[string]json.RawMessage, keys []string) error {
	var missing []string
	for _, k := range keys {
		if v, ok := rec[k]; !ok || string(v) == "null" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

func recordID(rec map[string]json.RawMessage) string {
	var id string
	if err := json.Unmarshal(rec["id"], &id); err != nil || id == "" {
		return "(no id)"
	}
	return fmt.Sprintf("%q", id)
}
