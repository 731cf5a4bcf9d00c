package scorecard

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/adapters"
	"github.com/de-tools/growth-scorecard/pkg/clock"
	"github.com/de-tools/growth-scorecard/pkg/handlers/respond"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/scorecard"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

type Service interface {
	Build(ctx context.Context, req scorecard.Request) (domain.Scorecard, error)
	Series(ctx context.Context, period domain.Period) ([]domain.MetricPoint, error)
}

type Observer interface {
	ObserveScorecard(sc domain.Scorecard)
}

type Handler struct {
	service  Service
	defaults domain.Preferences
	observer Observer
	clock    clock.Clock
}

// NewHandler builds the scorecard handler. defaults supply the period and objective when the
// query does not; observer may be nil.
func NewHandler(service Service, defaults domain.Preferences, observer Observer, c clock.Clock) *Handler {
	return &Handler{
		service:  service,
		defaults: defaults,
		observer: observer,
		clock:    clock.OrSystem(c),
	}
}

// GetScorecard serves GET /scorecard?days=30&from=2024-03-01&to=2024-03-31&compare=true&objective=reduce-churn
func (h *Handler) GetScorecard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	period, err := h.parsePeriod(query)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	objective := h.defaults.Objective
	if v, ok := query["objective"]; ok {
		objective = domain.Objective(v[0])
		if !objective.Valid() {
			respond.Error(w, r, domain.ValidationErrors{{Field: "objective", Message: "unknown objective"}})
			return
		}
	}

	sc, err := h.service.Build(ctx, scorecard.Request{Period: period, Objective: objective})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if h.observer != nil {
		h.observer.ObserveScorecard(sc)
	}

	zerolog.Ctx(ctx).Debug().
		Str("objective", string(objective)).
		Int("days", period.Days()).
		Msg("scorecard served")
	respond.JSON(w, r, http.StatusOK, adapters.MapDomainScorecardToAPI(sc))
}

// GetSeries serves GET /metrics/series with the same period parameters as GetScorecard.
func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	period, err := h.parsePeriod(r.URL.Query())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	points, err := h.service.Series(r.Context(), period)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapDomainMetricPointsToAPI(points))
}

func (h *Handler) parsePeriod(query url.Values) (domain.Period, error) {
	var errs domain.ValidationErrors

	days := h.defaults.PeriodDays
	if v := query.Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs.Add("days", "must be a positive integer")
		}
		days = n
	}

	compare := h.defaults.CompareWithPrevious
	if v := query.Get("compare"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs.Add("compare", "must be a boolean")
		}
		compare = b
	}

	to := h.clock.Now()
	if v := query.Get("to"); v != "" {
		t, err := time.ParseInLocation(dateLayout, v, to.Location())
		if err != nil {
			errs.Add("to", "must be a date formatted as YYYY-MM-DD")
		}
		to = t
	}

	var from time.Time
	if v := query.Get("from"); v != "" {
		t, err := time.ParseInLocation(dateLayout, v, to.Location())
		if err != nil {
			errs.Add("from", "must be a date formatted as YYYY-MM-DD")
		}
		from = t
	}

	if errs.HasErrors() {
		return domain.Period{}, errs
	}

	if from.IsZero() {
		return domain.PeriodEndingAt(to, days, compare), nil
	}
	if to.Before(from) {
		return domain.Period{}, domain.ValidationErrors{{Field: "to", Message: "must not precede from"}}
	}
	return domain.Period{From: from, To: to, CompareWithPrevious: compare}, nil
}
