package telemetry

import (
	"net/http"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes the latest computed figures as Prometheus series.
type Metrics interface {
	ObserveScorecard(sc domain.Scorecard)
	ObserveCustomers(views []domain.CustomerView)
	ObserveSnapshot(err error, at time.Time)
}

type scorecardMetrics struct {
	kpis          *prometheus.GaugeVec
	health        prometheus.Gauge
	customers     *prometheus.GaugeVec
	snapshots     *prometheus.CounterVec
	lastSnapshot  prometheus.Gauge
	scorecardRuns prometheus.Counter
}

func NewMetrics(registry *prometheus.Registry) Metrics {
	factory := promauto.With(registry)

	return &scorecardMetrics{
		kpis: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "scorecard_kpi_value",
				Help: "Value of each KPI in the last built scorecard",
			},
			[]string{"kpi"},
		),
		health: factory.NewGauge(prometheus.GaugeOpts{
			Name: "scorecard_health_score",
			Help: "Health score (0-100) of the last built scorecard",
		}),
		customers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "scorecard_customers",
				Help: "Number of customers by resolved status in the last listing",
			},
			[]string{"status"},
		),
		snapshots: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scorecard_snapshots_total",
				Help: "The total number of snapshot captures by result",
			},
			[]string{"result"},
		),
		lastSnapshot: factory.NewGauge(prometheus.GaugeOpts{
			Name: "scorecard_last_snapshot_timestamp_seconds",
			Help: "Unix time of the last successful snapshot",
		}),
		scorecardRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "scorecard_builds_total",
			Help: "The total number of scorecards built",
		}),
	}
}

func (m *scorecardMetrics) ObserveScorecard(sc domain.Scorecard) {
	m.scorecardRuns.Inc()
	m.health.Set(float64(sc.Health.Score))

	m.kpis.WithLabelValues(string(domain.KPIRevenue)).Set(sc.Revenue)
	m.kpis.WithLabelValues(string(domain.KPITicket)).Set(sc.Ticket)
	m.kpis.WithLabelValues(string(domain.KPIRetention)).Set(sc.Retention)
	m.kpis.WithLabelValues(string(domain.KPIChurn)).Set(sc.Churn)
	m.kpis.WithLabelValues(string(domain.KPILTV)).Set(sc.LTV)
	m.kpis.WithLabelValues(string(domain.KPICAC)).Set(sc.CAC)
	m.kpis.WithLabelValues(string(domain.KPIMRR)).Set(sc.MRR)
	if sc.AverageNPS != nil {
		m.kpis.WithLabelValues(string(domain.KPINPS)).Set(*sc.AverageNPS)
	} else {
		m.kpis.DeleteLabelValues(string(domain.KPINPS))
	}
}

func (m *scorecardMetrics) ObserveCustomers(views []domain.CustomerView) {
	m.customers.Reset()
	for _, v := range views {
		m.customers.WithLabelValues(string(v.ResolvedStatus)).Inc()
	}
}

func (m *scorecardMetrics) ObserveSnapshot(err error, at time.Time) {
	if err != nil {
		m.snapshots.WithLabelValues("failed").Inc()
		return
	}
	m.snapshots.WithLabelValues("succeeded").Inc()
	m.lastSnapshot.Set(float64(at.Unix()))
}

// Handler serves the registry in the Prometheus text format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
