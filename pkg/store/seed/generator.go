package seed

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
)

// SeriesSettings shapes the generated daily metric series.
type SeriesSettings struct {
	BaseRevenue float64
	BaseCAC     float64
	BaseLTV     float64
	// Customers divides revenue into the daily average ticket.
	Customers float64
	// RecurringShare is the part of revenue reported as MRR.
	RecurringShare float64
	// CampaignFactor multiplies CAC into the spend used for ROI.
	CampaignFactor float64
}

func DefaultSeriesSettings() SeriesSettings {
	return SeriesSettings{
		BaseRevenue:    25000,
		BaseCAC:        450,
		BaseLTV:        8500,
		Customers:      8,
		RecurringShare: 0.7,
		CampaignFactor: 5,
	}
}

// Generator produces demo metric series. All randomness comes from rng so a fixed seed gives a
// fixed series.
type Generator struct {
	settings SeriesSettings
	rng      *rand.Rand
}

func NewGenerator(settings SeriesSettings, rng *rand.Rand) *Generator {
	return &Generator{settings: settings, rng: rng}
}

// Series returns one point per day for the days ending on end's calendar day, oldest first.
func (g *Generator) Series(end time.Time, days int) []domain.MetricPoint {
	s := g.settings
	y, m, d := end.Date()
	last := time.Date(y, m, d, 0, 0, 0, 0, end.Location())

	points := make([]domain.MetricPoint, 0, days)
	for i := 0; i < days; i++ {
		date := last.AddDate(0, 0, -(days - 1 - i))

		variation := math.Sin(float64(i)/5)*0.15 + g.rng.Float64()*0.1
		revenue := s.BaseRevenue * (1 + variation)
		cac := s.BaseCAC * (1 + variation*0.5)
		ltv := s.BaseLTV * (1 + variation*0.3)
		spend := cac * s.CampaignFactor

		points = append(points, domain.MetricPoint{
			Date:       date,
			Revenue:    domain.Float(revenue),
			Ticket:     domain.Float(revenue / s.Customers),
			LTV:        domain.Float(ltv),
			CAC:        domain.Float(cac),
			MRR:        domain.Float(revenue * s.RecurringShare),
			ROI:        domain.Float((revenue - spend) / spend * 100),
			ChurnRate:  domain.Float(3 + g.rng.Float64()*2),
			UpsellRate: domain.Float(8 + g.rng.Float64()*4),
		})
	}
	return points
}

// Demo builds the full demo dataset: fixtures plus the current and previous windows of daily
// metrics ending at now.
func Demo(now time.Time, windowDays int, rng *rand.Rand) Dataset {
	gen := NewGenerator(DefaultSeriesSettings(), rng)
	points := gen.Series(now.AddDate(0, 0, -windowDays), windowDays)
	points = append(points, gen.Series(now, windowDays)...)

	return Dataset{
		Products:        Products(),
		Customers:       Customers(),
		Points:          points,
		Recommendations: Recommendations(),
	}
}

// Shuffler reorders recommendations randomly. It is safe for concurrent use.
type Shuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewShuffler(rng *rand.Rand) *Shuffler {
	return &Shuffler{rng: rng}
}

func (s *Shuffler) Reorder(recs []domain.Recommendation) []domain.Recommendation {
	out := make([]domain.Recommendation, len(recs))
	copy(out, recs)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
