package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
)

const cacWindow = 7 // most recent daily points averaged for CAC

func hasContractValue(c domain.Customer) bool {
	return c.ContractValue != nil && *c.ContractValue != 0
}

// AverageTicket is the mean contract value of active customers that have one.
func AverageTicket(customers []domain.Customer) float64 {
	total, n := 0.0, 0
	for _, c := range customers {
		if c.Status != domain.StatusActive || !hasContractValue(c) {
			continue
		}
		total += *c.ContractValue
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// RetentionRate is the percentage of customers whose stored status is active.
func RetentionRate(customers []domain.Customer) float64 {
	return statusShare(customers, domain.StatusActive)
}

// ChurnRate is the percentage of customers whose stored status is canceled.
func ChurnRate(customers []domain.Customer) float64 {
	return statusShare(customers, domain.StatusCanceled)
}

func statusShare(customers []domain.Customer, status domain.CustomerStatus) float64 {
	if len(customers) == 0 {
		return 0
	}
	n := 0
	for _, c := range customers {
		if c.Status == status {
			n++
		}
	}
	return float64(n) / float64(len(customers)) * 100
}

// LTVBreakdown exposes the accumulators behind LifetimeValue.
type LTVBreakdown struct {
	Qualifying    int
	TotalMonths   int
	TotalValue    float64
	AverageMonths float64
	AverageTicket float64
	Value         float64
}

// LifetimeValueBreakdown computes the lifetime value together with its intermediate figures.
// Each customer with a start date and contract value contributes max(1, months active) months;
// the resulting average duration is multiplied by the global average ticket.
func LifetimeValueBreakdown(customers []domain.Customer, now time.Time) LTVBreakdown {
	var b LTVBreakdown
	for _, c := range customers {
		if c.StartDate == nil || !hasContractValue(c) {
			continue
		}
		end := now
		if c.EndDate != nil {
			end = *c.EndDate
		}
		months := max(1, MonthsBetween(end, *c.StartDate))

		b.Qualifying++
		b.TotalMonths += months
		b.TotalValue += *c.ContractValue * float64(months)
	}
	if b.Qualifying == 0 {
		return b
	}

	b.AverageMonths = float64(b.TotalMonths) / float64(b.Qualifying)
	b.AverageTicket = AverageTicket(customers)
	b.Value = b.AverageTicket * b.AverageMonths
	return b
}

func LifetimeValue(customers []domain.Customer, now time.Time) float64 {
	return LifetimeValueBreakdown(customers, now).Value
}

// MonthlyRecurringRevenue sums the monthly-normalized contract value of active customers billed
// with a recurring method.
func MonthlyRecurringRevenue(customers []domain.Customer) float64 {
	sum := 0.0
	for _, c := range customers {
		if c.Status != domain.StatusActive || !c.PaymentMethod.IsRecurring() || !hasContractValue(c) {
			continue
		}
		sum += *c.ContractValue / c.Periodicity.MonthlyDivisor()
	}
	return sum
}

// CustomerAcquisitionCost averages CAC over the last seven points by date. Points that did not
// report CAC count as zero.
func CustomerAcquisitionCost(points []domain.MetricPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	recent := SortByDate(points)
	if len(recent) > cacWindow {
		recent = recent[len(recent)-cacWindow:]
	}
	return SumField(recent, domain.FieldCAC) / float64(len(recent))
}

// SortByDate returns a chronologically ordered copy of points.
func SortByDate(points []domain.MetricPoint) []domain.MetricPoint {
	sorted := make([]domain.MetricPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// SumField adds up one field over points, skipping points that did not report it.
func SumField(points []domain.MetricPoint, field domain.MetricField) float64 {
	sum := 0.0
	for _, p := range points {
		if v := field(p); v != nil {
			sum += *v
		}
	}
	return sum
}

// MeanField divides SumField by the number of points; unreported values weigh as zero.
// It returns 0 for no points.
func MeanField(points []domain.MetricPoint, field domain.MetricField) float64 {
	if len(points) == 0 {
		return 0
	}
	return SumField(points, field) / float64(len(points))
}

// PercentChange returns the relative change from previous to current in percent, or 0 when
// previous is not positive.
func PercentChange(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// AverageNPS averages the non-zero NPS answers. It returns nil when nobody answered.
func AverageNPS(customers []domain.Customer) *float64 {
	total, n := 0, 0
	for _, c := range customers {
		if c.NPS == nil || *c.NPS == 0 {
			continue
		}
		total += *c.NPS
		n++
	}
	if n == 0 {
		return nil
	}
	avg := float64(total) / float64(n)
	return &avg
}

// MultiInstallmentShare is the percentage of active customers paying in more than one installment.
func MultiInstallmentShare(customers []domain.Customer) float64 {
	active, multi := 0, 0
	for _, c := range customers {
		if c.Status != domain.StatusActive {
			continue
		}
		active++
		if c.InstallmentCount != nil && *c.InstallmentCount > 1 {
			multi++
		}
	}
	if active == 0 {
		return 0
	}
	return float64(multi) / float64(active) * 100
}

const (
	retentionWeight = 30
	ltvCacWeight    = 30
	mrrWeight       = 20
	npsWeight       = 20

	targetLTVCACRatio = 3
	mrrTarget         = 10000
	neutralNPSScore   = 10
)

// HealthScore combines retention, LTV/CAC ratio, MRR and NPS into a 0-100 score.
func HealthScore(p domain.HealthScoreParams) domain.HealthScoreResult {
	score := p.Retention / 100 * retentionWeight

	ratio := 0.0
	if p.CAC > 0 {
		ratio = p.LTV / p.CAC
	}
	score += math.Min(ratio/targetLTVCACRatio, 1) * ltvCacWeight

	if p.MRR > mrrTarget {
		score += mrrWeight
	} else {
		score += p.MRR / mrrTarget * mrrWeight
	}

	if p.NPS != nil {
		score += *p.NPS / 10 * npsWeight
	} else {
		score += neutralNPSScore
	}

	final := int(math.Floor(score + 0.5))
	return domain.HealthScoreResult{
		Score:          final,
		Classification: classify(final),
		Color:          colorOf(final),
	}
}

func classify(score int) domain.HealthClassification {
	switch {
	case score >= 80:
		return domain.HealthHigh
	case score >= 60:
		return domain.HealthMedium
	default:
		return domain.HealthLow
	}
}

func colorOf(score int) domain.HealthColor {
	switch classify(score) {
	case domain.HealthHigh:
		return domain.HealthGreen
	case domain.HealthMedium:
		return domain.HealthYellow
	default:
		return domain.HealthRed
	}
}
