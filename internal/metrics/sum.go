package metrics

import (
	"math"
	"productivity-tracker/internal/domain/models"
)

type timeTotals struct {
	stories float64
	prs     float64
	tests   float64
	support float64
	issues  float64
}

func totalsOf(ds models.Dataset) timeTotals {
	var t timeTotals
	for _, s := range ds.Stories {
		t.stories += s.TimeSpent
	}
	for _, pr := range ds.PullRequests {
		t.prs += pr.TimeSpent
	}
	for _, tst := range ds.Tests {
		t.tests += tst.TimeSpent
	}
	for _, s := range ds.Support {
		t.support += s.TimeSpent
	}
	for _, i := range ds.Issues {
		t.issues += i.TimeSpent
	}
	return t
}

func (t timeTotals) development() float64 {
	return t.stories + t.prs
}

func (t timeTotals) all() float64 {
	return t.stories + t.prs + t.tests + t.support + t.issues
}

// ratio divides by max(1, den) so empty collections give 0.
func ratio(num, den float64) float64 {
	return num / math.Max(1, den)
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
