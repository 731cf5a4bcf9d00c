package api

import "time"

type TimePeriod struct {
	Start               time.Time `json:"start"`
	End                 time.Time `json:"end"`
	Duration            int       `json:"duration_days"`
	CompareWithPrevious bool      `json:"compare_with_previous"`
}

type KPI struct {
	Key       string   `json:"key"`
	Title     string   `json:"title"`
	Value     float64  `json:"value"`
	Unit      string   `json:"unit"`
	Formatted string   `json:"formatted"`
	Delta     *float64 `json:"delta,omitempty"`
}

type HealthScore struct {
	Score          int    `json:"score"`
	Classification string `json:"classification"`
	Color          string `json:"color"`
}

type SeriesPoint struct {
	Date     time.Time `json:"date"`
	Current  *float64  `json:"current"`
	Previous *float64  `json:"previous,omitempty"`
}

type Scorecard struct {
	Period                TimePeriod       `json:"period"`
	Objective             string           `json:"objective,omitempty"`
	KPIs                  []KPI            `json:"kpis"`
	Health                HealthScore      `json:"health"`
	RevenueDelta          float64          `json:"revenue_delta"`
	MRR                   float64          `json:"mrr"`
	AverageNPS            *float64         `json:"average_nps"`
	MultiInstallmentShare float64          `json:"multi_installment_share"`
	MeanPointLTV          float64          `json:"mean_point_ltv"`
	Highlights            []Recommendation `json:"highlights"`
	RevenueSeries         []SeriesPoint    `json:"revenue_series"`
	LTVSeries             []SeriesPoint    `json:"ltv_series"`
	RetentionSeries       []SeriesPoint    `json:"retention_series"`
}

type MetricPoint struct {
	Date       time.Time `json:"date"`
	Revenue    *float64  `json:"revenue,omitempty"`
	Ticket     *float64  `json:"ticket,omitempty"`
	LTV        *float64  `json:"ltv,omitempty"`
	CAC        *float64  `json:"cac,omitempty"`
	MRR        *float64  `json:"mrr,omitempty"`
	ROI        *float64  `json:"roi,omitempty"`
	ChurnRate  *float64  `json:"churn_rate,omitempty"`
	UpsellRate *float64  `json:"upsell_rate,omitempty"`
}
