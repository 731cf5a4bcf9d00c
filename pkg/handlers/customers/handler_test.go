package customers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/models/api"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/scorecard"
	"github.com/de-tools/growth-scorecard/pkg/store/seed"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) ObserveCustomers(views []domain.CustomerView) {
	m.Called(views)
}

type mockReader struct {
	mock.Mock
}

func (m *mockReader) Customers(ctx context.Context, filter scorecard.Filter) ([]domain.CustomerView, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.CustomerView), args.Error(1)
}

func (m *mockReader) Customer(ctx context.Context, id string) (domain.CustomerDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.CustomerDetail), args.Error(1)
}

func (m *mockReader) Recommendations(ctx context.Context, id string) ([]domain.ClientRecommendation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]domain.ClientRecommendation), args.Error(1)
}

type fixture struct {
	store    *seed.MemoryStore
	observer *mockObserver
	router   chi.Router
}

func setup(t *testing.T) fixture {
	t.Helper()
	store := seed.NewMemoryStore(seed.Dataset{Products: seed.Products(), Customers: seed.Customers()})
	observer := new(mockObserver)
	service := scorecard.NewService(store, nil, clock.Fixed(now))

	h := NewHandler(service, store, observer, clock.Fixed(now))
	ids := 0
	h.newID = func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}

	return fixture{store: store, observer: observer, router: routes(h)}
}

func routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/customers", h.ListCustomers)
	r.Post("/customers", h.CreateCustomer)
	r.Get("/customers/{id}", h.GetCustomer)
	r.Put("/customers/{id}", h.UpdateCustomer)
	r.Delete("/customers/{id}", h.DeleteCustomer)
	r.Get("/customers/{id}/recommendations", h.GetRecommendations)
	return r
}

func do(router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestListCustomers(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		observed       bool
		expectedStatus int
		expectedIDs    []string
	}{
		{
			name:           "all customers",
			observed:       true,
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"cli-1", "cli-2", "cli-3", "cli-4", "cli-5", "cli-6", "cli-7", "cli-8"},
		},
		{
			name:           "search by contact name",
			query:          "?search=SILVA",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"cli-1"},
		},
		{
			name:           "search by company",
			query:          "?search=varejo",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"cli-5"},
		},
		{
			name:           "status and product",
			query:          "?status=active&product_id=prod-2",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"cli-1", "cli-8"},
		},
		{
			name:           "unknown status",
			query:          "?status=sleeping",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			if tt.observed {
				f.observer.On("ObserveCustomers", mock.Anything).Return()
			}

			rec := do(f.router, http.MethodGet, "/customers"+tt.query, "")
			require.Equal(t, tt.expectedStatus, rec.Code)
			f.observer.AssertExpectations(t)
			if !tt.observed {
				f.observer.AssertNotCalled(t, "ObserveCustomers", mock.Anything)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var body []api.Customer
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			ids := make([]string, len(body))
			for i, c := range body {
				ids[i] = c.ID
				assert.NotEmpty(t, c.ResolvedStatus)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestGetCustomer(t *testing.T) {
	f := setup(t)

	rec := do(f.router, http.MethodGet, "/customers/cli-2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body api.CustomerDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cli-2", body.ID)
	assert.Equal(t, "active", body.ResolvedStatus)
	require.NotNil(t, body.Product)
	assert.Equal(t, "prod-3", body.Product.ID)
	assert.NotEmpty(t, body.Recommendations)

	rec = do(f.router, http.MethodGet, "/customers/cli-404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRecommendations(t *testing.T) {
	f := setup(t)

	rec := do(f.router, http.MethodGet, "/customers/cli-2/recommendations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []api.ClientRecommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body)
	assert.Equal(t, "Upsell", body[0].Type)

	rec = do(f.router, http.MethodGet, "/customers/cli-404/recommendations", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCustomer(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedFields []string
	}{
		{
			name: "valid customer",
			body: `{
				"contact_name": "Lucia Mendes",
				"company": "Agro Forte",
				"product_id": "prod-1",
				"contract_value": 9000,
				"payment_method": "cash",
				"installment_count": 3,
				"start_date": "2024-03-01T00:00:00Z",
				"status": "active",
				"nps": 9,
				"interactions": [{"date": "2024-03-02T00:00:00Z", "kind": "meeting", "title": "Kickoff"}]
			}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing required fields",
			body:           `{"company": "Nobody"}`,
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"contact_name", "status"},
		},
		{
			name: "end before start",
			body: `{
				"contact_name": "Lucia Mendes",
				"status": "active",
				"start_date": "2024-03-01T00:00:00Z",
				"end_date": "2024-02-01T00:00:00Z"
			}`,
			expectedStatus: http.StatusBadRequest,
			expectedFields: []string{"end_date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			rec := do(f.router, http.MethodPost, "/customers", tt.body)
			require.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus != http.StatusCreated {
				var body api.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				fields := make([]string, len(body.Details))
				for i, d := range body.Details {
					fields[i] = d.Field
				}
				assert.ElementsMatch(t, tt.expectedFields, fields)
				return
			}

			var body api.CustomerDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "id-1", body.ID)
			assert.True(t, now.Equal(body.CreatedAt))
			assert.Nil(t, body.InstallmentCount)
			require.Len(t, body.Interactions, 1)
			assert.Equal(t, "id-2", body.Interactions[0].ID)

			stored, err := f.store.GetCustomer(context.Background(), "id-1")
			require.NoError(t, err)
			assert.Equal(t, "Agro Forte", stored.Company)
		})
	}
}

func TestUpdateCustomer(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	before, err := f.store.GetCustomer(ctx, "cli-1")
	require.NoError(t, err)

	rec := do(f.router, http.MethodPut, "/customers/cli-1",
		`{"contact_name": "Carlos Silva", "company": "Tech Solutions Ltda", "status": "finalized", "nps": 7}`)
	require.Equal(t, http.StatusOK, rec.Code)

	after, err := f.store.GetCustomer(ctx, "cli-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFinalized, after.Status)
	assert.Equal(t, 7, *after.NPS)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))

	rec = do(f.router, http.MethodPut, "/customers/cli-404", `{"contact_name": "x", "status": "active"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCustomer(t *testing.T) {
	f := setup(t)

	rec := do(f.router, http.MethodDelete, "/customers/cli-1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(f.router, http.MethodGet, "/customers/cli-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(f.router, http.MethodDelete, "/customers/cli-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReaderFailure(t *testing.T) {
	reader := new(mockReader)
	reader.On("Customers", mock.Anything, scorecard.Filter{}).
		Return([]domain.CustomerView(nil), errors.New("store offline"))

	router := routes(NewHandler(reader, nil, nil, clock.Fixed(now)))
	rec := do(router, http.MethodGet, "/customers", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	reader.AssertExpectations(t)
}
