// Package sourcemock provides a testify mock of source.Store.
package sourcemock

import (
	"context"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/stretchr/testify/mock"
)

type Store struct {
	mock.Mock
}

func (m *Store) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *Store) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Customer), args.Error(1)
}

func (m *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *Store) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *Store) ListMetricPoints(ctx context.Context, from, to time.Time) ([]domain.MetricPoint, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.MetricPoint), args.Error(1)
}

func (m *Store) ListRecommendations(ctx context.Context) ([]domain.Recommendation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Recommendation), args.Error(1)
}

func (m *Store) SaveCustomer(ctx context.Context, c domain.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *Store) DeleteCustomer(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *Store) SaveProduct(ctx context.Context, p domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *Store) AddMetricPoints(ctx context.Context, points ...domain.MetricPoint) error {
	return m.Called(ctx, points).Error(0)
}

func (m *Store) ReplaceRecommendations(ctx context.Context, recs []domain.Recommendation) error {
	return m.Called(ctx, recs).Error(0)
}

func (m *Store) ToggleResolved(ctx context.Context, id string) (domain.Recommendation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Recommendation), args.Error(1)
}

func (m *Store) Close() error {
	return m.Called().Error(0)
}
