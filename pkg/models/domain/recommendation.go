package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type RecommendationKind string

const (
	KindDiagnosis      RecommendationKind = "diagnosis"
	KindRecommendation RecommendationKind = "recommendation"
	KindAlert          RecommendationKind = "alert"
)

// Recommendation is a system-level alert, suggestion or diagnosis shown on the board.
// The only mutation it supports is toggling Resolved.
type Recommendation struct {
	ID          string
	Kind        RecommendationKind
	Priority    Priority
	Title       string
	Content     string
	Resolved    bool
	GeneratedAt time.Time
}

type ClientRecommendationType string

const (
	TypeUpsell       ClientRecommendationType = "Upsell"
	TypeRetention    ClientRecommendationType = "Retention"
	TypeFinancial    ClientRecommendationType = "Financial"
	TypeReactivation ClientRecommendationType = "Reactivation"
	TypeOnboarding   ClientRecommendationType = "Onboarding"
	TypeReferral     ClientRecommendationType = "Referral"
)

// ClientRecommendation is computed per customer on every read and never stored.
type ClientRecommendation struct {
	Type     ClientRecommendationType
	Title    string
	Content  string
	Priority Priority
}
