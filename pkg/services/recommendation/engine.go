package recommendation

import (
	"time"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/metrics"
	"github.com/de-tools/growth-scorecard/pkg/services/status"
)

// RuleSettings contains the thresholds of the per-customer recommendation rules
type RuleSettings struct {
	// UpsellMinNPS is the lowest NPS of a satisfied active customer (default: 8)
	UpsellMinNPS int `mapstructure:"upsell_min_nps"`
	// RetentionMaxNPS is the highest NPS that still flags a retention risk (default: 6)
	RetentionMaxNPS int `mapstructure:"retention_max_nps"`
	// MaxInteractionGapDays flags customers without contact for longer than this (default: 30)
	MaxInteractionGapDays int `mapstructure:"max_interaction_gap_days"`
	// OnboardingMaxMonths is the months active below which a customer is onboarding (default: 2)
	OnboardingMaxMonths int `mapstructure:"onboarding_max_months"`
	// ReferralMinMonths is the months active above which a customer is long-standing (default: 12)
	ReferralMinMonths int `mapstructure:"referral_min_months"`
	// ReferralMinNPS is the lowest NPS of a referral candidate (default: 8)
	ReferralMinNPS int `mapstructure:"referral_min_nps"`
}

// DefaultRuleSettings returns the default rule thresholds
func DefaultRuleSettings() RuleSettings {
	return RuleSettings{
		UpsellMinNPS:          8,
		RetentionMaxNPS:       6,
		MaxInteractionGapDays: 30,
		OnboardingMaxMonths:   2,
		ReferralMinMonths:     12,
		ReferralMinNPS:        8,
	}
}

// Signals supplies the history-derived inputs of the retention and financial rules.
type Signals interface {
	InteractionGapDays(c domain.Customer) int
	OverdueCount(c domain.Customer) int
}

// PlaceholderSignals answers every customer with the same fixed values. No interaction or
// payment history is recorded yet, so this is the default.
type PlaceholderSignals struct {
	DaysSinceLastInteraction int `mapstructure:"days_since_last_interaction"`
	OverdueInstallments      int `mapstructure:"overdue_installments"`
}

func DefaultSignals() PlaceholderSignals {
	return PlaceholderSignals{DaysSinceLastInteraction: 10}
}

func (s PlaceholderSignals) InteractionGapDays(domain.Customer) int {
	return s.DaysSinceLastInteraction
}

func (s PlaceholderSignals) OverdueCount(domain.Customer) int { return s.OverdueInstallments }

var (
	upsell = domain.ClientRecommendation{
		Type:     domain.TypeUpsell,
		Title:    "Expansion opportunity",
		Content:  "Customer shows high satisfaction and stability. Consider offering an upgrade to a fuller plan or complementary services.",
		Priority: domain.PriorityMedium,
	}
	retention = domain.ClientRecommendation{
		Type:     domain.TypeRetention,
		Title:    "Churn risk detected",
		Content:  "Customer with little recent interaction. Schedule a follow-up or review the perceived value of the service.",
		Priority: domain.PriorityHigh,
	}
	financial = domain.ClientRecommendation{
		Type:     domain.TypeFinancial,
		Title:    "Pending payments identified",
		Content:  "There are overdue installments. Consider offering renegotiation or an easier way to settle before the contract is canceled.",
		Priority: domain.PriorityHigh,
	}
	reactivation = domain.ClientRecommendation{
		Type:     domain.TypeReactivation,
		Title:    "Recently canceled customer",
		Content:  "This customer ended the contract. Send an exit survey or offer special conditions to come back.",
		Priority: domain.PriorityMedium,
	}
	onboarding = domain.ClientRecommendation{
		Type:     domain.TypeOnboarding,
		Title:    "Customer in early stage",
		Content:  "Follow onboarding closely to secure a good experience and reduce the risk of early churn.",
		Priority: domain.PriorityMedium,
	}
	referral = domain.ClientRecommendation{
		Type:     domain.TypeReferral,
		Title:    "Loyal customer, ideal for referrals",
		Content:  "This customer has a long relationship and high satisfaction. Ask for referrals or a testimonial.",
		Priority: domain.PriorityLow,
	}
)

// Engine evaluates the per-customer rules against an injected clock and signal source.
type Engine struct {
	settings RuleSettings
	signals  Signals
	clock    clock.Clock
}

// NewEngine builds an Engine. A nil signals falls back to DefaultSignals, a nil clock to the
// wall clock.
func NewEngine(settings RuleSettings, signals Signals, c clock.Clock) *Engine {
	if signals == nil {
		signals = DefaultSignals()
	}
	return &Engine{settings: settings, signals: signals, clock: clock.OrSystem(c)}
}

// Generate returns the recommendations for c in rule order.
func (e *Engine) Generate(c domain.Customer) []domain.ClientRecommendation {
	return e.GenerateAt(c, e.clock.Now())
}

// GenerateAt evaluates the rules as of now instead of the engine clock.
func (e *Engine) GenerateAt(c domain.Customer, now time.Time) []domain.ClientRecommendation {
	return generate(c, now, e.settings, e.signals)
}

// GenerateClientRecommendations evaluates the rules with default thresholds and signals at now.
func GenerateClientRecommendations(c domain.Customer, now time.Time) []domain.ClientRecommendation {
	return generate(c, now, DefaultRuleSettings(), DefaultSignals())
}

// MonthsActive is the number of whole months from the start date to the end date, or to now when
// the contract is open. It is 0 without a start date.
func MonthsActive(c domain.Customer, now time.Time) int {
	if c.StartDate == nil {
		return 0
	}
	end := now
	if c.EndDate != nil {
		end = *c.EndDate
	}
	return metrics.MonthsBetween(end, *c.StartDate)
}

func generate(c domain.Customer, now time.Time, s RuleSettings, signals Signals) []domain.ClientRecommendation {
	recs := []domain.ClientRecommendation{}

	resolved := status.Resolve(c, now)
	months := MonthsActive(c, now)
	nps := 0
	if c.NPS != nil {
		nps = *c.NPS
	}

	if resolved == domain.ClientActive && nps >= s.UpsellMinNPS {
		recs = append(recs, upsell)
	}

	if resolved == domain.ClientAtRisk || nps <= s.RetentionMaxNPS ||
		signals.InteractionGapDays(c) > s.MaxInteractionGapDays {
		recs = append(recs, retention)
	}

	if signals.OverdueCount(c) > 0 {
		recs = append(recs, financial)
	}

	if resolved == domain.ClientCanceled {
		recs = append(recs, reactivation)
	}

	if months < s.OnboardingMaxMonths && c.Status == domain.StatusActive {
		recs = append(recs, onboarding)
	}

	if months > s.ReferralMinMonths && nps >= s.ReferralMinNPS {
		recs = append(recs, referral)
	}

	return recs
}
