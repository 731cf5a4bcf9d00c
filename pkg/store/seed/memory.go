package seed

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/source"
)

// DriverName is the registry name of the in-memory store.
const DriverName = "memory"

// MemoryStore keeps every record in process memory. Lists keep insertion order; metric points
// are kept by date with one point per instant.
type MemoryStore struct {
	mu              sync.RWMutex
	customers       []domain.Customer
	products        []domain.Product
	points          []domain.MetricPoint
	recommendations []domain.Recommendation
}

func NewMemoryStore(ds Dataset) *MemoryStore {
	s := &MemoryStore{
		customers:       cloneAll(ds.Customers, cloneCustomer),
		products:        slices.Clone(ds.Products),
		points:          cloneAll(ds.Points, clonePoint),
		recommendations: slices.Clone(ds.Recommendations),
	}
	sortPoints(s.points)
	return s
}

// Factory opens a MemoryStore. The dsn "empty" yields a store without records; anything else
// loads the demo dataset generated with a random seed.
func Factory(now func() time.Time, windowDays int) source.Factory {
	return func(_ context.Context, dsn string) (source.Store, error) {
		if dsn == "empty" {
			return NewMemoryStore(Dataset{}), nil
		}
		seed := uint64(now().UnixNano())
		return NewMemoryStore(Demo(now(), windowDays, NewRand(seed))), nil
	}
}

func sortPoints(points []domain.MetricPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
}

func (s *MemoryStore) ListCustomers(_ context.Context) ([]domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.customers, cloneCustomer), nil
}

func (s *MemoryStore) GetCustomer(_ context.Context, id string) (domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return cloneCustomer(c), nil
		}
	}
	return domain.Customer{}, domain.NewNotFoundError("customer", id)
}

func (s *MemoryStore) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products), nil
}

func (s *MemoryStore) GetProduct(_ context.Context, id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.NewNotFoundError("product", id)
}

func (s *MemoryStore) ListMetricPoints(_ context.Context, from, to time.Time) ([]domain.MetricPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.MetricPoint{}
	for _, p := range s.points {
		if source.InRange(p.Date, from, to) {
			out = append(out, clonePoint(p))
		}
	}
	return out, nil
}

func (s *MemoryStore) ListRecommendations(_ context.Context) ([]domain.Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.recommendations), nil
}

func (s *MemoryStore) SaveCustomer(_ context.Context, c domain.Customer) error {
	c = cloneCustomer(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return nil
		}
	}
	s.customers = append(s.customers, c)
	return nil
}

func (s *MemoryStore) DeleteCustomer(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = slices.Delete(s.customers, i, i+1)
			return nil
		}
	}
	return domain.NewNotFoundError("customer", id)
}

func (s *MemoryStore) SaveProduct(_ context.Context, p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	s.products = append(s.products, p)
	return nil
}

func (s *MemoryStore) AddMetricPoints(_ context.Context, points ...domain.MetricPoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range points {
		p = clonePoint(p)
		idx := slices.IndexFunc(s.points, func(existing domain.MetricPoint) bool {
			return existing.Date.Equal(p.Date)
		})
		if idx >= 0 {
			s.points[idx] = p
			continue
		}
		s.points = append(s.points, p)
	}
	sortPoints(s.points)
	return nil
}

func (s *MemoryStore) ReplaceRecommendations(_ context.Context, recs []domain.Recommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommendations = slices.Clone(recs)
	return nil
}

func (s *MemoryStore) ToggleResolved(_ context.Context, id string) (domain.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recommendations {
		if s.recommendations[i].ID == id {
			s.recommendations[i].Resolved = !s.recommendations[i].Resolved
			return s.recommendations[i], nil
		}
	}
	return domain.Recommendation{}, domain.NewNotFoundError("recommendation", id)
}

func (s *MemoryStore) Close() error { return nil }
