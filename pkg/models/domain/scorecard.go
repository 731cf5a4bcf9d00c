package domain

import "time"

type KPIKey string

const (
	KPIRevenue   KPIKey = "revenue"
	KPITicket    KPIKey = "average_ticket"
	KPIRetention KPIKey = "retention_rate"
	KPIChurn     KPIKey = "churn_rate"
	KPILTV       KPIKey = "ltv"
	KPICAC       KPIKey = "cac"
	KPIMRR       KPIKey = "mrr"
	KPIROI       KPIKey = "roi"
	KPINPS       KPIKey = "average_nps"
	KPIHealth    KPIKey = "health_score"
)

type KPIUnit string

const (
	UnitCurrency KPIUnit = "currency"
	UnitPercent  KPIUnit = "percent"
	UnitNumber   KPIUnit = "number"
	UnitScore    KPIUnit = "score"
)

type KPI struct {
	Key   KPIKey
	Title string
	Value float64
	Unit  KPIUnit
	Delta *float64 // percent change against the previous period, nil when not comparable
}

type SeriesPoint struct {
	Date     time.Time
	Current  *float64
	Previous *float64
}

type Scorecard struct {
	Period    Period
	Objective Objective

	Revenue      float64
	RevenueDelta float64
	Ticket       float64
	Retention    float64
	Churn        float64
	LTV          float64
	CAC          float64
	MRR          float64
	AverageNPS   *float64
	Health       HealthScoreResult

	MultiInstallmentShare float64 // percent of active customers paying in more than one installment
	MeanPointLTV          float64

	KPIs            []KPI
	Highlights      []Recommendation
	RevenueSeries   []SeriesPoint
	LTVSeries       []SeriesPoint
	RetentionSeries []SeriesPoint
}

// CustomerView is a customer row together with its resolved status.
type CustomerView struct {
	Customer       Customer
	ResolvedStatus ClientStatus
	Product        *Product
}

type CustomerDetail struct {
	CustomerView
	LTV              float64
	RelationshipDays int
	MonthsActive     int
	Ascension        *float64
	Recommendations  []ClientRecommendation
}
