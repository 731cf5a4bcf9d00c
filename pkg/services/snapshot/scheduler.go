package snapshot

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs a Snapshotter on a cron schedule.
type Scheduler struct {
	cron        *cron.Cron
	snapshotter *Snapshotter
	schedule    string
}

func NewScheduler(snapshotter *Snapshotter, schedule string, opts ...cron.Option) *Scheduler {
	return &Scheduler{
		cron:        cron.New(opts...),
		snapshotter: snapshotter,
		schedule:    schedule,
	}
}

// Start registers the capture job and starts the cron loop. Jobs log through the logger
// carried by ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	_, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.snapshotter.Capture(ctx); err != nil {
			logger.Error().Err(err).Msg("scheduled snapshot failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid snapshot schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	logger.Info().Str("schedule", s.schedule).Msg("snapshot scheduler started")
	return nil
}

// Stop halts the scheduler. The returned context is done once running jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Entries reports the registered jobs.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}
