package source

import (
	"context"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
)

// Provider is the read side of a record source.
type Provider interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	// GetCustomer returns a domain.NotFoundError when no customer has the id.
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	// ListMetricPoints returns the points dated within [from, to] ordered by date.
	// A zero bound leaves that side open.
	ListMetricPoints(ctx context.Context, from, to time.Time) ([]domain.MetricPoint, error)
	// ListRecommendations returns the board in its current order.
	ListRecommendations(ctx context.Context) ([]domain.Recommendation, error)
}

// Store is a Provider that also accepts writes.
type Store interface {
	Provider

	// SaveCustomer inserts or replaces the customer with the same id.
	SaveCustomer(ctx context.Context, c domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
	SaveProduct(ctx context.Context, p domain.Product) error
	AddMetricPoints(ctx context.Context, points ...domain.MetricPoint) error
	// ReplaceRecommendations stores recs as the whole board, in order.
	ReplaceRecommendations(ctx context.Context, recs []domain.Recommendation) error
	// ToggleResolved flips the resolved flag of one recommendation atomically.
	ToggleResolved(ctx context.Context, id string) (domain.Recommendation, error)
	Close() error
}

// InRange reports whether t lies in [from, to], with zero bounds open.
func InRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}
