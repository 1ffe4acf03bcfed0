package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	salesatlasmiddleware "github.com/de-tools/sales-atlas/pkg/server/middleware"
	"github.com/de-tools/sales-atlas/pkg/services/agent"

	saleshandlers "github.com/de-tools/sales-atlas/pkg/handlers/sales"
	toolshandlers "github.com/de-tools/sales-atlas/pkg/handlers/tools"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Reporter sales.Reporter
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	salesHandler := saleshandlers.NewHandler(config.Dependencies.Reporter)
	toolsHandler := toolshandlers.NewHandler(agent.NewCatalog(config.Dependencies.Reporter))

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(salesatlasmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/functions/get_sales_details_by_product", salesHandler.GetSalesDetailsByProduct)
		r.Get("/tools", toolsHandler.ListTools)
		r.Post("/tools/{tool}", toolsHandler.InvokeTool)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router:          router,
		logger:          &config.Dependencies.Logger,
		shutdownTimeout: shutdownTimeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
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
