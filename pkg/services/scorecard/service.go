package scorecard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/metrics"
	"github.com/de-tools/growth-scorecard/pkg/services/recommendation"
	"github.com/de-tools/growth-scorecard/pkg/services/source"
	"github.com/de-tools/growth-scorecard/pkg/services/status"
	"github.com/rs/zerolog"
)

type Request struct {
	Period    domain.Period
	Objective domain.Objective
}

// Filter narrows the customer list. Empty fields match everything.
type Filter struct {
	// Search matches contact name or company, case-insensitively.
	Search    string
	Status    domain.CustomerStatus
	ProductID string
}

func (f Filter) match(c domain.Customer) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(c.ContactName), term) &&
			!strings.Contains(strings.ToLower(c.Company), term) {
			return false
		}
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.ProductID != "" && c.ProductID != f.ProductID {
		return false
	}
	return true
}

// Service assembles dashboard views from a record source.
type Service struct {
	source source.Provider
	engine *recommendation.Engine
	clock  clock.Clock
}

func NewService(src source.Provider, engine *recommendation.Engine, c clock.Clock) *Service {
	c = clock.OrSystem(c)
	if engine == nil {
		engine = recommendation.NewEngine(recommendation.DefaultRuleSettings(), nil, c)
	}
	return &Service{source: src, engine: engine, clock: c}
}

// Build computes the scorecard for the requested period.
func (s *Service) Build(ctx context.Context, req Request) (domain.Scorecard, error) {
	logger := zerolog.Ctx(ctx)
	now := s.clock.Now()

	customers, err := s.source.ListCustomers(ctx)
	if err != nil {
		return domain.Scorecard{}, fmt.Errorf("list customers: %w", err)
	}

	w := windows{compare: req.Period.CompareWithPrevious}
	w.current, err = s.source.ListMetricPoints(ctx, req.Period.From, req.Period.To)
	if err != nil {
		return domain.Scorecard{}, fmt.Errorf("list current metric points: %w", err)
	}
	if w.compare {
		prev := req.Period.Previous()
		w.previous, err = s.source.ListMetricPoints(ctx, prev.From, prev.To)
		if err != nil {
			return domain.Scorecard{}, fmt.Errorf("list previous metric points: %w", err)
		}
	}

	recs, err := s.source.ListRecommendations(ctx)
	if err != nil {
		return domain.Scorecard{}, fmt.Errorf("list recommendations: %w", err)
	}

	sc := domain.Scorecard{
		Period:     req.Period,
		Objective:  req.Objective,
		Revenue:    metrics.SumField(w.current, domain.FieldRevenue),
		Ticket:     metrics.AverageTicket(customers),
		Retention:  metrics.RetentionRate(customers),
		Churn:      metrics.ChurnRate(customers),
		LTV:        metrics.LifetimeValue(customers, now),
		CAC:        metrics.CustomerAcquisitionCost(w.current),
		MRR:        metrics.MonthlyRecurringRevenue(customers),
		AverageNPS: metrics.AverageNPS(customers),

		MultiInstallmentShare: metrics.MultiInstallmentShare(customers),
		MeanPointLTV:          metrics.MeanField(w.current, domain.FieldLTV),
	}
	sc.RevenueDelta = metrics.PercentChange(sc.Revenue, metrics.SumField(w.previous, domain.FieldRevenue))
	sc.Health = metrics.HealthScore(domain.HealthScoreParams{
		Retention: sc.Retention,
		LTV:       sc.LTV,
		CAC:       sc.CAC,
		NPS:       sc.AverageNPS,
		MRR:       sc.MRR,
	})

	sc.KPIs = buildKPIs(sc, w)
	sc.Highlights = recommendation.Highlights(recs, req.Objective)
	sc.RevenueSeries = series(w, domain.FieldRevenue)
	sc.LTVSeries = series(w, domain.FieldLTV)
	sc.RetentionSeries = series(w, retentionOf)

	logger.Debug().
		Int("customers", len(customers)).
		Int("points", len(w.current)).
		Int("previous_points", len(w.previous)).
		Int("health", sc.Health.Score).
		Msg("scorecard built")

	return sc, nil
}

// Customers lists the customers matching filter with their resolved status and product.
func (s *Service) Customers(ctx context.Context, filter Filter) ([]domain.CustomerView, error) {
	now := s.clock.Now()

	customers, err := s.source.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.CustomerView, 0, len(customers))
	for _, c := range customers {
		if !filter.match(c) {
			continue
		}
		views = append(views, view(c, products, now))
	}
	return views, nil
}

// Customer returns the detail view of one customer.
func (s *Service) Customer(ctx context.Context, id string) (domain.CustomerDetail, error) {
	now := s.clock.Now()

	c, err := s.source.GetCustomer(ctx, id)
	if err != nil {
		return domain.CustomerDetail{}, fmt.Errorf("get customer %s: %w", id, err)
	}
	products, err := s.products(ctx)
	if err != nil {
		return domain.CustomerDetail{}, err
	}

	detail := domain.CustomerDetail{
		CustomerView:    view(c, products, now),
		LTV:             metrics.LifetimeValue([]domain.Customer{c}, now),
		MonthsActive:    recommendation.MonthsActive(c, now),
		Recommendations: s.engine.GenerateAt(c, now),
	}
	if c.StartDate != nil {
		end := now
		if c.EndDate != nil {
			end = *c.EndDate
		}
		detail.RelationshipDays = metrics.DaysBetween(end, *c.StartDate)
	}
	if pct, ok := metrics.Ascension(c); ok {
		detail.Ascension = &pct
	}
	return detail, nil
}

// Recommendations returns the per-customer recommendations of one customer.
func (s *Service) Recommendations(ctx context.Context, id string) ([]domain.ClientRecommendation, error) {
	c, err := s.source.GetCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", id, err)
	}
	return s.engine.GenerateAt(c, s.clock.Now()), nil
}

// Series returns the daily points of the period.
func (s *Service) Series(ctx context.Context, period domain.Period) ([]domain.MetricPoint, error) {
	points, err := s.source.ListMetricPoints(ctx, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("list metric points: %w", err)
	}
	return points, nil
}

func (s *Service) products(ctx context.Context) (map[string]domain.Product, error) {
	list, err := s.source.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	byID := make(map[string]domain.Product, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}
	return byID, nil
}

func view(c domain.Customer, products map[string]domain.Product, now time.Time) domain.CustomerView {
	v := domain.CustomerView{
		Customer:       c,
		ResolvedStatus: status.Resolve(c, now),
	}
	if p, ok := products[c.ProductID]; ok {
		v.Product = &p
	}
	return v
}
