package recommendations

import (
	"context"
	"net/http"
	"strconv"

	"github.com/de-tools/growth-scorecard/pkg/adapters"
	"github.com/de-tools/growth-scorecard/pkg/handlers/respond"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/recommendation"
	"github.com/go-chi/chi/v5"
)

type Board interface {
	List(ctx context.Context, filter recommendation.BoardFilter) ([]domain.Recommendation, error)
	Toggle(ctx context.Context, id string) (domain.Recommendation, error)
	Regenerate(ctx context.Context) ([]domain.Recommendation, error)
}

type Handler struct {
	board Board
}

func NewHandler(board Board) *Handler {
	return &Handler{board: board}
}

// ListRecommendations serves GET /recommendations?kind=alert&priority=high&limit=5
func (h *Handler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := recommendation.BoardFilter{
		Kind:     domain.RecommendationKind(query.Get("kind")),
		Priority: domain.Priority(query.Get("priority")),
	}

	var errs domain.ValidationErrors
	switch filter.Kind {
	case "", domain.KindDiagnosis, domain.KindRecommendation, domain.KindAlert:
	default:
		errs.Add("kind", "unknown recommendation kind")
	}
	switch filter.Priority {
	case "", domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
	default:
		errs.Add("priority", "unknown priority")
	}
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs.Add("limit", "must be a non-negative integer")
		}
		filter.Limit = n
	}
	if errs.HasErrors() {
		respond.Error(w, r, errs)
		return
	}

	recs, err := h.board.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapDomainRecommendationsToAPI(recs))
}

func (h *Handler) ToggleRecommendation(w http.ResponseWriter, r *http.Request) {
	rec, err := h.board.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapDomainRecommendationToAPI(rec))
}

func (h *Handler) RegenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.board.Regenerate(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapDomainRecommendationsToAPI(recs))
}
