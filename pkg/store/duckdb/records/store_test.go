package records

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/source"
	"github.com/de-tools/growth-scorecard/pkg/store/duckdb"
	"github.com/de-tools/growth-scorecard/pkg/store/seed"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store *Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	store, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: store}
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestStore_Customers(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	var _ source.Store = f.store

	for _, c := range seed.Customers() {
		require.NoError(t, f.store.SaveCustomer(ctx, c))
	}

	t.Run("round trip keeps optional fields", func(t *testing.T) {
		c, err := f.store.GetCustomer(ctx, "cli-3")
		require.NoError(t, err)

		assert.Equal(t, "StartUp XYZ", c.Company)
		assert.Equal(t, domain.PaymentPixInstallments, c.PaymentMethod)
		require.NotNil(t, c.ContractValue)
		assert.Equal(t, 497.0, *c.ContractValue)
		require.NotNil(t, c.InstallmentCount)
		assert.Equal(t, 12, *c.InstallmentCount)
		require.NotNil(t, c.NPS)
		assert.Equal(t, 6, *c.NPS)
		require.NotNil(t, c.StartDate)
		assert.True(t, c.StartDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
		assert.Nil(t, c.EndDate)
		require.Len(t, c.Interactions, 1)
		assert.Equal(t, domain.InteractionContact, c.Interactions[0].Kind)
	})

	t.Run("list returns every customer with interactions", func(t *testing.T) {
		customers, err := f.store.ListCustomers(ctx)
		require.NoError(t, err)
		require.Len(t, customers, 8)

		byID := map[string]domain.Customer{}
		for _, c := range customers {
			byID[c.ID] = c
		}
		assert.Len(t, byID["cli-1"].Interactions, 2)
		assert.Empty(t, byID["cli-6"].Interactions)
		assert.Nil(t, byID["cli-7"].InstallmentCount)
	})

	t.Run("save replaces the customer and its interactions", func(t *testing.T) {
		c, err := f.store.GetCustomer(ctx, "cli-1")
		require.NoError(t, err)
		c.Status = domain.StatusAtRisk
		c.Interactions = c.Interactions[:1]

		require.NoError(t, f.store.SaveCustomer(ctx, c))

		updated, err := f.store.GetCustomer(ctx, "cli-1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAtRisk, updated.Status)
		assert.Len(t, updated.Interactions, 1)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, f.store.DeleteCustomer(ctx, "cli-8"))

		_, err := f.store.GetCustomer(ctx, "cli-8")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, f.store.DeleteCustomer(ctx, "cli-8"), domain.ErrNotFound)
	})
}

func TestStore_Products(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	for _, p := range seed.Products() {
		require.NoError(t, f.store.SaveProduct(ctx, p))
	}

	products, err := f.store.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 5)

	p, err := f.store.GetProduct(ctx, "prod-5")
	require.NoError(t, err)
	assert.Equal(t, "Treinamento In-Company", p.Name)
	assert.False(t, p.Active)

	_, err = f.store.GetProduct(ctx, "prod-9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_MetricPoints(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, f.store.AddMetricPoints(ctx,
		domain.MetricPoint{Date: day(3), Revenue: domain.Float(300)},
		domain.MetricPoint{Date: day(1), Revenue: domain.Float(100), CAC: domain.Float(40)},
		domain.MetricPoint{Date: day(2)},
	))
	require.NoError(t, f.store.AddMetricPoints(ctx))

	t.Run("all points in date order", func(t *testing.T) {
		points, err := f.store.ListMetricPoints(ctx, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, points, 3)
		assert.True(t, points[0].Date.Equal(day(1)))
		assert.Equal(t, 40.0, *points[0].CAC)
		assert.Nil(t, points[1].Revenue)
	})

	t.Run("bounded range", func(t *testing.T) {
		points, err := f.store.ListMetricPoints(ctx, day(2), day(3))
		require.NoError(t, err)
		assert.Len(t, points, 2)

		points, err = f.store.ListMetricPoints(ctx, time.Time{}, day(1))
		require.NoError(t, err)
		assert.Len(t, points, 1)
	})

	t.Run("same date replaces", func(t *testing.T) {
		require.NoError(t, f.store.AddMetricPoints(ctx, domain.MetricPoint{Date: day(3), Revenue: domain.Float(999)}))

		points, err := f.store.ListMetricPoints(ctx, day(3), day(3))
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, 999.0, *points[0].Revenue)
	})
}

func TestStore_Recommendations(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.ReplaceRecommendations(ctx, seed.Recommendations()))

	recs, err := f.store.ListRecommendations(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 8)
	assert.Equal(t, "rec-1", recs[0].ID)

	rec, err := f.store.ToggleResolved(ctx, "rec-4")
	require.NoError(t, err)
	assert.True(t, rec.Resolved)

	_, err = f.store.ToggleResolved(ctx, "rec-99")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rec, err = f.store.ToggleResolved(ctx, "rec-2")
	require.NoError(t, err)
	require.True(t, rec.Resolved)
	rec, err = f.store.ToggleResolved(ctx, "rec-2")
	require.NoError(t, err)
	assert.False(t, rec.Resolved)

	reversed := make([]domain.Recommendation, 0, len(recs))
	current, err := f.store.ListRecommendations(ctx)
	require.NoError(t, err)
	for i := len(current) - 1; i >= 0; i-- {
		reversed = append(reversed, current[i])
	}
	require.NoError(t, f.store.ReplaceRecommendations(ctx, reversed))

	recs, err = f.store.ListRecommendations(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rec-8", recs[0].ID)
	assert.Equal(t, "rec-4", recs[4].ID)
	assert.True(t, recs[4].Resolved)
}

func TestStore_ErrorPaths(t *testing.T) {
	ctx := context.Background()

	newMock := func(t *testing.T) (*Store, sqlmock.Sqlmock) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		store, err := NewStore(db)
		require.NoError(t, err)
		return store, mock
	}

	t.Run("list customers query failure", func(t *testing.T) {
		store, mock := newMock(t)
		mock.ExpectQuery("FROM customers").WillReturnError(errors.New("io error"))

		_, err := store.ListCustomers(ctx)
		assert.ErrorContains(t, err, "query customers")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("save customer rolls back on interaction failure", func(t *testing.T) {
		store, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT OR REPLACE INTO customers").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM interactions").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO interactions").WillReturnError(errors.New("constraint"))
		mock.ExpectRollback()

		err := store.SaveCustomer(ctx, domain.Customer{
			ID:           "cli-1",
			ContactName:  "Carlos",
			Status:       domain.StatusActive,
			Interactions: []domain.Interaction{{ID: "int-1", Kind: domain.InteractionOther, Title: "x"}},
		})
		assert.ErrorContains(t, err, "insert interaction int-1")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("metric point insert failure", func(t *testing.T) {
		store, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT OR REPLACE INTO metric_points").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := store.AddMetricPoints(ctx, domain.MetricPoint{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)})
		assert.ErrorContains(t, err, "insert metric point 2024-05-01")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("toggle on missing id rolls back", func(t *testing.T) {
		store, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE recommendations SET resolved = NOT resolved").
			WithArgs("rec-9").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := store.ToggleResolved(ctx, "rec-9")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFactory(t *testing.T) {
	ctx := context.Background()

	_, err := Factory(ctx, "")
	assert.Error(t, err)

	s, err := Factory(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	customers, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
}
