package customers

import (
	"context"
	"net/http"

	"github.com/de-tools/growth-scorecard/pkg/adapters"
	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/handlers/respond"
	"github.com/de-tools/growth-scorecard/pkg/models/api"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/scorecard"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Reader serves the computed customer views.
type Reader interface {
	Customers(ctx context.Context, filter scorecard.Filter) ([]domain.CustomerView, error)
	Customer(ctx context.Context, id string) (domain.CustomerDetail, error)
	Recommendations(ctx context.Context, id string) ([]domain.ClientRecommendation, error)
}

// Writer persists customer records.
type Writer interface {
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
	SaveCustomer(ctx context.Context, c domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

type Observer interface {
	ObserveCustomers(views []domain.CustomerView)
}

type Handler struct {
	reader   Reader
	writer   Writer
	observer Observer
	clock    clock.Clock
	newID    func() string
}

func NewHandler(reader Reader, writer Writer, observer Observer, c clock.Clock) *Handler {
	return &Handler{
		reader:   reader,
		writer:   writer,
		observer: observer,
		clock:    clock.OrSystem(c),
		newID:    uuid.NewString,
	}
}

// ListCustomers serves GET /customers?search=&status=&product_id=
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := scorecard.Filter{
		Search:    query.Get("search"),
		Status:    domain.CustomerStatus(query.Get("status")),
		ProductID: query.Get("product_id"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		respond.Error(w, r, domain.ValidationErrors{{Field: "status", Message: "unknown status"}})
		return
	}

	views, err := h.reader.Customers(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if h.observer != nil && filter == (scorecard.Filter{}) {
		h.observer.ObserveCustomers(views)
	}

	response := make([]api.Customer, len(views))
	for i, v := range views {
		response[i] = adapters.MapDomainCustomerViewToAPI(v)
	}
	respond.JSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	detail, err := h.reader.Customer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapDomainCustomerDetailToAPI(detail))
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.reader.Recommendations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapDomainClientRecommendationsToAPI(recs))
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := respond.Decode[api.CustomerRequest](r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c := adapters.MapAPICustomerRequestToDomain(h.newID(), req, h.clock.Now(), h.newID)
	if err := h.save(ctx, c); err != nil {
		respond.Error(w, r, err)
		return
	}

	zerolog.Ctx(ctx).Info().Str("customer_id", c.ID).Msg("customer created")
	h.respondDetail(w, r, http.StatusCreated, c.ID)
}

// UpdateCustomer replaces every field of an existing customer; the creation time is kept.
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	existing, err := h.writer.GetCustomer(ctx, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	req, err := respond.Decode[api.CustomerRequest](r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c := adapters.MapAPICustomerRequestToDomain(id, req, existing.CreatedAt, h.newID)
	if err := h.save(ctx, c); err != nil {
		respond.Error(w, r, err)
		return
	}

	zerolog.Ctx(ctx).Info().Str("customer_id", id).Msg("customer updated")
	h.respondDetail(w, r, http.StatusOK, id)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.writer.DeleteCustomer(ctx, id); err != nil {
		respond.Error(w, r, err)
		return
	}

	zerolog.Ctx(ctx).Info().Str("customer_id", id).Msg("customer deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) save(ctx context.Context, c domain.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return h.writer.SaveCustomer(ctx, c)
}

func (h *Handler) respondDetail(w http.ResponseWriter, r *http.Request, status int, id string) {
	detail, err := h.reader.Customer(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, status, adapters.MapDomainCustomerDetailToAPI(detail))
}
