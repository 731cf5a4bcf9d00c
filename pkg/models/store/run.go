package store

import "time"

// SnapshotRun is one execution of the daily metric snapshot.
type SnapshotRun struct {
	ID         string
	StartedAt  time.Time
	FinishedAt *time.Time
	PointDate  time.Time
	Error      *string
}
