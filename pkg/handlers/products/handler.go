package products

import (
	"context"
	"net/http"

	"github.com/de-tools/growth-scorecard/pkg/adapters"
	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/handlers/respond"
	"github.com/de-tools/growth-scorecard/pkg/models/api"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Store interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	SaveProduct(ctx context.Context, p domain.Product) error
}

type Handler struct {
	store Store
	clock clock.Clock
	newID func() string
}

func NewHandler(store Store, c clock.Clock) *Handler {
	return &Handler{store: store, clock: clock.OrSystem(c), newID: uuid.NewString}
}

// ListProducts serves GET /products; ?active=true hides retired products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListProducts(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"
	response := make([]api.Product, 0, len(list))
	for _, p := range list {
		if activeOnly && !p.Active {
			continue
		}
		response = append(response, adapters.MapDomainProductToAPI(p))
	}
	respond.JSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapDomainProductToAPI(p))
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := respond.Decode[api.ProductRequest](r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p := adapters.MapAPIProductRequestToDomain(h.newID(), req, h.clock.Now())
	if err := p.Validate(); err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := h.store.SaveProduct(ctx, p); err != nil {
		respond.Error(w, r, err)
		return
	}

	zerolog.Ctx(ctx).Info().Str("product_id", p.ID).Msg("product created")
	respond.JSON(w, r, http.StatusCreated, adapters.MapDomainProductToAPI(p))
}
