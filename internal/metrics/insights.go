package metrics

import (
	"fmt"
	"productivity-tracker/internal/domain/models"
)

const (
	prodSupportWarnPct = 25.0
	prodIssuesCritPct  = 20.0
	testingLowPct      = 15.0
	developmentGoodPct = 50.0
	slowPRAverageHours = 16.0
)

// Insights evaluates the advisory rules in a fixed order. The share rules
// are skipped entirely when no time was logged; the PR average rule is not.
func Insights(ds models.Dataset) []models.Insight {
	t := totalsOf(ds)
	total := t.all()
	insights := make([]models.Insight, 0, 5)

	if total > 0 {
		supportPct := t.support * 100 / total
		issuesPct := t.issues * 100 / total
		testingPct := t.tests * 100 / total
		devPct := t.development() * 100 / total

		if supportPct > prodSupportWarnPct {
			insights = append(insights, models.Insight{
				Type:    models.InsightWarning,
				Title:   "High Production Support Time",
				Message: fmt.Sprintf("%.1f%% of time spent on production support. Consider improving monitoring and preventive measures.", supportPct),
				Value:   supportPct,
			})
		}
		if issuesPct > prodIssuesCritPct {
			insights = append(insights, models.Insight{
				Type:    models.InsightCritical,
				Title:   "Excessive Production Issues",
				Message: fmt.Sprintf("%.1f%% of time spent on production issues. This indicates quality concerns.", issuesPct),
				Value:   issuesPct,
			})
		}
		if testingPct < testingLowPct {
			insights = append(insights, models.Insight{
				Type:    models.InsightWarning,
				Title:   "Low Testing Coverage",
				Message: fmt.Sprintf("Only %.1f%% of time spent on testing. Consider increasing test coverage.", testingPct),
				Value:   testingPct,
			})
		}
		if devPct > developmentGoodPct {
			insights = append(insights, models.Insight{
				Type:    models.InsightSuccess,
				Title:   "Good Development Focus",
				Message: fmt.Sprintf("%.1f%% of time focused on development. Team is productive on new features.", devPct),
				Value:   devPct,
			})
		}
	}

	avgPR := ratio(t.prs, float64(len(ds.PullRequests)))
	if avgPR > slowPRAverageHours {
		insights = append(insights, models.Insight{
			Type:    models.InsightWarning,
			Title:   "Long PR Review Times",
			Message: fmt.Sprintf("Average PR takes %.1f hours. Consider streamlining review process.", avgPR),
			Value:   avgPR,
		})
	}

	return insights
}
