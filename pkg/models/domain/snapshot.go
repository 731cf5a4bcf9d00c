package domain

import "time"

// SnapshotRun records one capture of the daily metric point.
type SnapshotRun struct {
	ID         string
	StartedAt  time.Time
	FinishedAt *time.Time
	PointDate  time.Time
	Error      *string
}
