package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/models/api"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/source/sourcemock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

func routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/products", h.ListProducts)
	r.Post("/products", h.CreateProduct)
	r.Get("/products/{id}", h.GetProduct)
	return r
}

func TestListProducts(t *testing.T) {
	catalog := []domain.Product{
		{ID: "prod-1", Name: "Consulting", Kind: domain.ProductKindService, Active: true},
		{ID: "prod-2", Name: "Legacy plan", Kind: domain.ProductKindPlan, Active: false},
	}

	tests := []struct {
		name        string
		query       string
		expectedIDs []string
	}{
		{name: "all products", expectedIDs: []string{"prod-1", "prod-2"}},
		{name: "active only", query: "?active=true", expectedIDs: []string{"prod-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(sourcemock.Store)
			store.On("ListProducts", mock.Anything).Return(catalog, nil)

			rec := httptest.NewRecorder()
			routes(NewHandler(store, clock.Fixed(now))).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			var body []api.Product
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			ids := make([]string, len(body))
			for i, p := range body {
				ids[i] = p.ID
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestGetProduct(t *testing.T) {
	store := new(sourcemock.Store)
	store.On("GetProduct", mock.Anything, "prod-1").
		Return(domain.Product{ID: "prod-1", Name: "Consulting", Kind: domain.ProductKindService}, nil)
	store.On("GetProduct", mock.Anything, "prod-9").
		Return(domain.Product{}, domain.NewNotFoundError("product", "prod-9"))
	router := routes(NewHandler(store, clock.Fixed(now)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/prod-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/prod-9", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProduct(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*sourcemock.Store)
		expectedStatus int
	}{
		{
			name: "valid product",
			body: `{"name": " Mentoring ", "kind": "service", "base_price": 1500}`,
			setupMock: func(m *sourcemock.Store) {
				m.On("SaveProduct", mock.Anything, domain.Product{
					ID:        "prod-new",
					Name:      "Mentoring",
					Kind:      domain.ProductKindService,
					BasePrice: 1500,
					Active:    true,
					CreatedAt: now,
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown kind",
			body:           `{"name": "Mentoring", "kind": "gadget"}`,
			setupMock:      func(*sourcemock.Store) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank name",
			body:           `{"name": "   ", "kind": "plan"}`,
			setupMock:      func(*sourcemock.Store) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"name": "Mentoring", "kind": "plan", "active": false}`,
			setupMock: func(m *sourcemock.Store) {
				m.On("SaveProduct", mock.Anything, mock.Anything).Return(errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(sourcemock.Store)
			tt.setupMock(store)
			h := NewHandler(store, clock.Fixed(now))
			h.newID = func() string { return "prod-new" }

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(tt.body))
			routes(h).ServeHTTP(rec, req.WithContext(context.Background()))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			store.AssertExpectations(t)
		})
	}
}
