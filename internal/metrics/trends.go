package metrics

import (
	"productivity-tracker/internal/apperrors"
	"productivity-tracker/internal/domain/models"
	"time"
)

const (
	DefaultTrendDays = 30
	MaxTrendDays     = 365

	// Stories and PRs carry no per-day effort, so their time is spread
	// as if it covered a week.
	developmentSpreadDays = 7
)

// Trends buckets time spent per calendar day over the days ending with
// the day of now. Records dated outside the window are ignored.
func Trends(ds models.Dataset, days int, now time.Time) (models.Trends, error) {
	if days < 1 || days > MaxTrendDays {
		return models.Trends{}, apperrors.ErrInvalidDays
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -(days - 1))

	trends := models.Trends{
		Dates: make([]string, 0, days),
		Data:  make(map[string]*models.TrendBucket, days),
	}
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(models.DateLayout)
		trends.Dates = append(trends.Dates, date)
		trends.Data[date] = &models.TrendBucket{}
	}

	add := func(date string, apply func(b *models.TrendBucket)) {
		if b, ok := trends.Data[date]; ok {
			apply(b)
		}
	}

	for _, s := range ds.Stories {
		add(s.CreatedDate, func(b *models.TrendBucket) { b.Development += s.TimeSpent / developmentSpreadDays })
	}
	for _, pr := range ds.PullRequests {
		add(pr.CreatedDate, func(b *models.TrendBucket) { b.Development += pr.TimeSpent / developmentSpreadDays })
	}
	for _, t := range ds.Tests {
		add(t.Date, func(b *models.TrendBucket) { b.Testing += t.TimeSpent })
	}
	for _, s := range ds.Support {
		add(s.Date, func(b *models.TrendBucket) { b.ProdSupport += s.TimeSpent })
	}
	for _, i := range ds.Issues {
		add(i.ReportedDate, func(b *models.TrendBucket) { b.ProdIssues += i.TimeSpent })
	}

	return trends, nil
}
