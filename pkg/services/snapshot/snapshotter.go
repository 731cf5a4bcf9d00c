package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/metrics"
	"github.com/de-tools/growth-scorecard/pkg/services/source"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RunLog records snapshot executions.
type RunLog interface {
	Record(ctx context.Context, run domain.SnapshotRun) error
}

// Observer is notified after every capture attempt.
type Observer interface {
	ObserveSnapshot(err error, at time.Time)
}

// Snapshotter turns the current customer base into the metric point of the day.
type Snapshotter struct {
	store    source.Store
	runs     RunLog
	clock    clock.Clock
	observer Observer
}

// NewSnapshotter builds a Snapshotter. runs may be nil when run history is not kept.
func NewSnapshotter(store source.Store, runs RunLog, c clock.Clock) *Snapshotter {
	return &Snapshotter{store: store, runs: runs, clock: clock.OrSystem(c)}
}

// WithObserver sets the capture observer and returns s.
func (s *Snapshotter) WithObserver(o Observer) *Snapshotter {
	s.observer = o
	return s
}

// Capture computes today's point and stores it, replacing an earlier capture of the same day.
// Revenue, CAC and ROI come from outside the customer base and are left unset.
func (s *Snapshotter) Capture(ctx context.Context) (domain.MetricPoint, error) {
	now := s.clock.Now()
	y, m, d := now.Date()
	run := domain.SnapshotRun{
		ID:        uuid.NewString(),
		StartedAt: now,
		PointDate: time.Date(y, m, d, 0, 0, 0, 0, now.Location()),
	}
	logger := zerolog.Ctx(ctx).With().Str("run_id", run.ID).Logger()

	s.record(ctx, run)

	point, err := s.capture(ctx, run.PointDate, now)
	finished := s.clock.Now()
	run.FinishedAt = &finished
	if err != nil {
		msg := err.Error()
		run.Error = &msg
		s.record(ctx, run)
		s.observe(err, finished)
		logger.Error().Err(err).Msg("snapshot failed")
		return domain.MetricPoint{}, err
	}

	s.record(ctx, run)
	s.observe(nil, finished)
	logger.Info().Time("date", point.Date).Float64("mrr", *point.MRR).Msg("snapshot captured")
	return point, nil
}

func (s *Snapshotter) capture(ctx context.Context, date, now time.Time) (domain.MetricPoint, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return domain.MetricPoint{}, fmt.Errorf("list customers: %w", err)
	}

	point := domain.MetricPoint{
		Date:      date,
		Ticket:    domain.Float(metrics.AverageTicket(customers)),
		LTV:       domain.Float(metrics.LifetimeValue(customers, now)),
		MRR:       domain.Float(metrics.MonthlyRecurringRevenue(customers)),
		ChurnRate: domain.Float(metrics.ChurnRate(customers)),
	}

	if err := s.store.AddMetricPoints(ctx, point); err != nil {
		return domain.MetricPoint{}, fmt.Errorf("store snapshot: %w", err)
	}
	return point, nil
}

func (s *Snapshotter) observe(err error, at time.Time) {
	if s.observer != nil {
		s.observer.ObserveSnapshot(err, at)
	}
}

func (s *Snapshotter) record(ctx context.Context, run domain.SnapshotRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.Record(ctx, run); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("run_id", run.ID).Msg("failed to record snapshot run")
	}
}
