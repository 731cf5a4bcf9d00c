package domain

import "time"

// Report is a rendered-agnostic view of a scorecard for the terminal reporters.
type Report struct {
	Title    string
	Period   TimePeriod
	Headline string
	Sections []ReportSection
}

type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

type ReportSection struct {
	Title   string
	Summary map[string]any
	Details []ReportDetail
}

type ReportDetail struct {
	Name        string
	Value       any
	Unit        string
	Description string
}
