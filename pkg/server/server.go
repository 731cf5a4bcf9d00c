package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/growth-scorecard/pkg/clock"
	customershandler "github.com/de-tools/growth-scorecard/pkg/handlers/customers"
	productshandler "github.com/de-tools/growth-scorecard/pkg/handlers/products"
	recommendationshandler "github.com/de-tools/growth-scorecard/pkg/handlers/recommendations"
	scorecardhandler "github.com/de-tools/growth-scorecard/pkg/handlers/scorecard"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/de-tools/growth-scorecard/pkg/services/recommendation"
	"github.com/de-tools/growth-scorecard/pkg/services/scorecard"
	"github.com/de-tools/growth-scorecard/pkg/services/source"
	"github.com/de-tools/growth-scorecard/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus"

	scorecardmiddleware "github.com/de-tools/growth-scorecard/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          http.Handler
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Scorecard   *scorecard.Service
	Store       source.Store
	Board       *recommendation.Board
	Preferences domain.Preferences
	// Metrics and Registry are optional; /metrics is only mounted when Registry is set.
	Metrics  telemetry.Metrics
	Registry *prometheus.Registry
	Clock    clock.Clock
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) http.Handler {
	deps := config.Dependencies

	var (
		scorecardObserver scorecardhandler.Observer
		customersObserver customershandler.Observer
	)
	if deps.Metrics != nil {
		scorecardObserver = deps.Metrics
		customersObserver = deps.Metrics
	}

	scHandler := scorecardhandler.NewHandler(deps.Scorecard, deps.Preferences, scorecardObserver, deps.Clock)
	customerHandler := customershandler.NewHandler(deps.Scorecard, deps.Store, customersObserver, deps.Clock)
	productHandler := productshandler.NewHandler(deps.Store, deps.Clock)
	recHandler := recommendationshandler.NewHandler(deps.Board)

	router := chi.NewRouter()

	router.Use(scorecardmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/scorecard", scHandler.GetScorecard)
		r.Get("/metrics/series", scHandler.GetSeries)

		r.Get("/customers", customerHandler.ListCustomers)
		r.Post("/customers", customerHandler.CreateCustomer)
		r.Get("/customers/{id}", customerHandler.GetCustomer)
		r.Put("/customers/{id}", customerHandler.UpdateCustomer)
		r.Delete("/customers/{id}", customerHandler.DeleteCustomer)
		r.Get("/customers/{id}/recommendations", customerHandler.GetRecommendations)

		r.Get("/products", productHandler.ListProducts)
		r.Post("/products", productHandler.CreateProduct)
		r.Get("/products/{id}", productHandler.GetProduct)

		r.Get("/recommendations", recHandler.ListRecommendations)
		r.Post("/recommendations/regenerate", recHandler.RegenerateRecommendations)
		r.Post("/recommendations/{id}/toggle", recHandler.ToggleRecommendation)
	})

	if deps.Registry != nil {
		router.Handle("/metrics", telemetry.Handler(deps.Registry))
	}

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start serves until the listener fails or the process receives SIGINT/SIGTERM.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
