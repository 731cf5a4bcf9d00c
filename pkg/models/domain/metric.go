package domain

import "time"

// MetricPoint is one day's aggregate business snapshot. A nil field was not reported that day.
type MetricPoint struct {
	Date       time.Time
	Revenue    *float64
	Ticket     *float64
	LTV        *float64
	CAC        *float64
	MRR        *float64
	ROI        *float64
	ChurnRate  *float64
	UpsellRate *float64
}

// MetricField selects one optional field of a MetricPoint.
type MetricField func(MetricPoint) *float64

var (
	FieldRevenue    MetricField = func(p MetricPoint) *float64 { return p.Revenue }
	FieldTicket     MetricField = func(p MetricPoint) *float64 { return p.Ticket }
	FieldLTV        MetricField = func(p MetricPoint) *float64 { return p.LTV }
	FieldCAC        MetricField = func(p MetricPoint) *float64 { return p.CAC }
	FieldMRR        MetricField = func(p MetricPoint) *float64 { return p.MRR }
	FieldROI        MetricField = func(p MetricPoint) *float64 { return p.ROI }
	FieldChurnRate  MetricField = func(p MetricPoint) *float64 { return p.ChurnRate }
	FieldUpsellRate MetricField = func(p MetricPoint) *float64 { return p.UpsellRate }
)
