package domain

import "time"

// Objective is the business goal the dashboard is tuned for.
type Objective string

const (
	ObjectiveNone              Objective = ""
	ObjectiveReduceChurn       Objective = "reduce-churn"
	ObjectiveIncreaseRetention Objective = "increase-retention"
	ObjectiveScaleSales        Objective = "scale-sales"
	ObjectiveStructureSalesOps Objective = "structure-sales-ops"
	ObjectiveImproveMargin     Objective = "improve-margin"
)

func (o Objective) Valid() bool {
	switch o {
	case ObjectiveNone, ObjectiveReduceChurn, ObjectiveIncreaseRetention,
		ObjectiveScaleSales, ObjectiveStructureSalesOps, ObjectiveImproveMargin:
		return true
	}
	return false
}

// RetentionFocused reports whether the objective puts retention KPIs first.
func (o Objective) RetentionFocused() bool {
	return o == ObjectiveReduceChurn || o == ObjectiveIncreaseRetention
}

// Preferences is the per-profile dashboard configuration.
type Preferences struct {
	Profile             string
	Objective           Objective
	RevenueModel        string
	Stage               string
	Theme               string
	PeriodDays          int
	CompareWithPrevious bool
	OnboardingSeen      bool
}

type Period struct {
	From                time.Time
	To                  time.Time
	CompareWithPrevious bool
}

// Days is the period length rounded up to whole days.
func (p Period) Days() int {
	d := p.To.Sub(p.From)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Previous returns the window of equal length that ends where p starts.
func (p Period) Previous() Period {
	return Period{
		From: p.From.AddDate(0, 0, -p.Days()),
		To:   p.From,
	}
}

// Contains is inclusive on both ends.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && !t.After(p.To)
}

// PeriodEndingAt builds the default rolling window of the given number of days.
func PeriodEndingAt(now time.Time, days int, compare bool) Period {
	return Period{
		From:                now.AddDate(0, 0, -days),
		To:                  now,
		CompareWithPrevious: compare,
	}
}
