package domain

type HealthClassification string

const (
	HealthHigh   HealthClassification = "high"
	HealthMedium HealthClassification = "medium"
	HealthLow    HealthClassification = "low"
)

type HealthColor string

const (
	HealthGreen  HealthColor = "green"
	HealthYellow HealthColor = "yellow"
	HealthRed    HealthColor = "red"
)

type HealthScoreParams struct {
	Retention float64 // percent
	LTV       float64
	CAC       float64
	NPS       *float64 // 0-10, nil when no customer reported one
	MRR       float64
}

type HealthScoreResult struct {
	Score          int // 0-100
	Classification HealthClassification
	Color          HealthColor
}
