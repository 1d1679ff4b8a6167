package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/fin-tools/expense-atlas/pkg/handlers/report"
	servermiddleware "github.com/fin-tools/expense-atlas/pkg/server/middleware"
)

type Dependencies struct {
	Reports *report.Handler
	Logger  zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter builds the API router with logging and recovery
// middleware applied.
func ConfigureRouter(config Config) *chi.Mux {
	reports := config.Dependencies.Reports

	router := chi.NewRouter()
	router.Use(servermiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/summary", reports.GetSummary)
		r.Get("/trend", reports.GetTrend)
		r.Get("/categories", reports.GetCategories)
		r.Get("/categories/breakdown", reports.GetCategoryBreakdown)
		r.Get("/groups", reports.ListGroups)
		r.Get("/groups/summaries", reports.GetGroupSummaries)
		r.Get("/pivot", reports.GetPivot)
		r.Get("/pivot/transactions", reports.GetDrillDown)
		r.Get("/transactions", reports.ListTransactions)
		r.Post("/reload", reports.Reload)
	})

	return router
}

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(config)

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: config.ShutdownTimeout,
	}
}

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

		timeout := w.shutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
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
