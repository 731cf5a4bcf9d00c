package recommendations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/growth-scorecard/pkg/models/api"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/recommendation"
	"github.com/de-tools/growth-scorecard/pkg/store/seed"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() (*seed.MemoryStore, chi.Router) {
	store := seed.NewMemoryStore(seed.Dataset{Recommendations: seed.Recommendations()})
	reverse := recommendation.ReordererFunc(func(recs []domain.Recommendation) []domain.Recommendation {
		out := make([]domain.Recommendation, len(recs))
		for i, r := range recs {
			out[len(recs)-1-i] = r
		}
		return out
	})
	h := NewHandler(recommendation.NewBoard(store, reverse))

	r := chi.NewRouter()
	r.Get("/recommendations", h.ListRecommendations)
	r.Post("/recommendations/regenerate", h.RegenerateRecommendations)
	r.Post("/recommendations/{id}/toggle", h.ToggleRecommendation)
	return store, r
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) []api.Recommendation {
	t.Helper()
	var body []api.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestListRecommendations(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		check          func(*testing.T, []api.Recommendation)
	}{
		{
			name:           "all",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, recs []api.Recommendation) {
				assert.Len(t, recs, len(seed.Recommendations()))
			},
		},
		{
			name:           "alerts only",
			query:          "?kind=alert",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, recs []api.Recommendation) {
				require.NotEmpty(t, recs)
				for _, r := range recs {
					assert.Equal(t, "alert", r.Kind)
				}
			},
		},
		{
			name:           "limited",
			query:          "?limit=2",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, recs []api.Recommendation) {
				assert.Len(t, recs, 2)
			},
		},
		{
			name:           "invalid filters",
			query:          "?kind=rumour&priority=urgent&limit=-3",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := setup()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations"+tt.query, nil))

			require.Equal(t, tt.expectedStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, decode(t, rec))
			}
		})
	}
}

func TestToggleRecommendation(t *testing.T) {
	_, router := setup()
	first := seed.Recommendations()[0]

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommendations/"+first.ID+"/toggle", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body api.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, first.ID, body.ID)
	assert.Equal(t, !first.Resolved, body.Resolved)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommendations/rec-404/toggle", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegenerateRecommendations(t *testing.T) {
	store, router := setup()
	original := seed.Recommendations()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/recommendations/regenerate", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	require.Len(t, body, len(original))
	assert.Equal(t, original[len(original)-1].ID, body[0].ID)

	stored, err := store.ListRecommendations(t.Context())
	require.NoError(t, err)
	assert.Equal(t, body[0].ID, stored[0].ID)
}
