package scorecard

import (
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/metrics"
)

var kpiTitles = map[domain.KPIKey]string{
	domain.KPIRevenue:   "Total revenue",
	domain.KPITicket:    "Average ticket",
	domain.KPIRetention: "Retention rate",
	domain.KPIChurn:     "Churn rate",
	domain.KPILTV:       "LTV",
	domain.KPICAC:       "CAC",
	domain.KPIMRR:       "MRR",
	domain.KPIROI:       "ROI",
	domain.KPINPS:       "Average NPS",
	domain.KPIHealth:    "Health score",
}

var kpiUnits = map[domain.KPIKey]domain.KPIUnit{
	domain.KPIRevenue:   domain.UnitCurrency,
	domain.KPITicket:    domain.UnitCurrency,
	domain.KPIRetention: domain.UnitPercent,
	domain.KPIChurn:     domain.UnitPercent,
	domain.KPILTV:       domain.UnitCurrency,
	domain.KPICAC:       domain.UnitCurrency,
	domain.KPIMRR:       domain.UnitCurrency,
	domain.KPIROI:       domain.UnitPercent,
	domain.KPINPS:       domain.UnitNumber,
	domain.KPIHealth:    domain.UnitScore,
}

// KPIOrder lists the headline KPIs for an objective, most relevant first.
func KPIOrder(objective domain.Objective) []domain.KPIKey {
	switch objective {
	case domain.ObjectiveReduceChurn, domain.ObjectiveIncreaseRetention:
		return []domain.KPIKey{domain.KPIRetention, domain.KPILTV, domain.KPIChurn, domain.KPINPS, domain.KPIHealth}
	case domain.ObjectiveScaleSales:
		return []domain.KPIKey{domain.KPIRevenue, domain.KPICAC, domain.KPIROI, domain.KPITicket, domain.KPIHealth}
	case domain.ObjectiveImproveMargin:
		return []domain.KPIKey{domain.KPIRevenue, domain.KPIROI, domain.KPICAC, domain.KPITicket, domain.KPIHealth}
	default:
		return []domain.KPIKey{domain.KPIRevenue, domain.KPITicket, domain.KPICAC, domain.KPILTV, domain.KPIHealth}
	}
}

// windows holds the point sets a KPI delta compares.
type windows struct {
	current  []domain.MetricPoint
	previous []domain.MetricPoint
	compare  bool
}

// delta compares the mean of field over both windows. It is nil when there is nothing to
// compare against.
func (w windows) delta(field domain.MetricField) *float64 {
	if !w.compare || len(w.previous) == 0 || len(w.current) == 0 {
		return nil
	}
	d := metrics.PercentChange(metrics.MeanField(w.current, field), metrics.MeanField(w.previous, field))
	return &d
}

func (w windows) retentionDelta() *float64 {
	if !w.compare || len(w.previous) == 0 || len(w.current) == 0 {
		return nil
	}
	cur := 100 - metrics.MeanField(w.current, domain.FieldChurnRate)
	prev := 100 - metrics.MeanField(w.previous, domain.FieldChurnRate)
	d := metrics.PercentChange(cur, prev)
	return &d
}

func buildKPIs(sc domain.Scorecard, w windows) []domain.KPI {
	var revenueDelta *float64
	if w.compare {
		d := sc.RevenueDelta
		revenueDelta = &d
	}

	nps := 0.0
	if sc.AverageNPS != nil {
		nps = *sc.AverageNPS
	}

	values := map[domain.KPIKey]struct {
		value float64
		delta *float64
	}{
		domain.KPIRevenue:   {sc.Revenue, revenueDelta},
		domain.KPITicket:    {sc.Ticket, w.delta(domain.FieldTicket)},
		domain.KPIRetention: {sc.Retention, w.retentionDelta()},
		domain.KPIChurn:     {sc.Churn, w.delta(domain.FieldChurnRate)},
		domain.KPILTV:       {sc.LTV, w.delta(domain.FieldLTV)},
		domain.KPICAC:       {sc.CAC, w.delta(domain.FieldCAC)},
		domain.KPIMRR:       {sc.MRR, w.delta(domain.FieldMRR)},
		domain.KPIROI:       {metrics.MeanField(w.current, domain.FieldROI), w.delta(domain.FieldROI)},
		domain.KPINPS:       {nps, nil},
		domain.KPIHealth:    {float64(sc.Health.Score), nil},
	}

	order := KPIOrder(sc.Objective)
	kpis := make([]domain.KPI, 0, len(order))
	for _, key := range order {
		v := values[key]
		kpis = append(kpis, domain.KPI{
			Key:   key,
			Title: kpiTitles[key],
			Value: v.value,
			Unit:  kpiUnits[key],
			Delta: v.delta,
		})
	}
	return kpis
}

// series pairs each current point with the previous point at the same index.
func series(w windows, value func(domain.MetricPoint) *float64) []domain.SeriesPoint {
	out := make([]domain.SeriesPoint, 0, len(w.current))
	for i, p := range w.current {
		sp := domain.SeriesPoint{Date: p.Date, Current: value(p)}
		if w.compare && i < len(w.previous) {
			sp.Previous = value(w.previous[i])
		}
		out = append(out, sp)
	}
	return out
}

func retentionOf(p domain.MetricPoint) *float64 {
	churn := 0.0
	if p.ChurnRate != nil {
		churn = *p.ChurnRate
	}
	return domain.Float(100 - churn)
}
