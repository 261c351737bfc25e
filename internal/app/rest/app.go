package rest

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"log/slog"
	"net/http"
	mwLogger "productivity-tracker/internal/http/middleware"
	v1 "productivity-tracker/internal/http/v1"
	"time"
)

type App struct {
	log        *slog.Logger
	deps       *v1.RouterDependencies
	httpServer *http.Server
}

func New(
	log *slog.Logger,
	deps *v1.RouterDependencies,
	port string,
	timeout time.Duration,
) *App {
	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           NewHandler(log, deps, timeout),
		ReadHeaderTimeout: timeout,
		IdleTimeout:       4 * timeout,
	}

	return &App{
		log:        log,
		deps:       deps,
		httpServer: httpServer,
	}
}

// NewHandler builds the chi router with the middleware stack and all v1 routes.
func NewHandler(log *slog.Logger, deps *v1.RouterDependencies, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mwLogger.Logger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	v1.SetupRoutes(r, deps, log)

	return r
}

func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

func (a *App) Run() error {
	const op = "app.rest.Run"
	a.log.With(slog.String("op", op)).Info("starting REST server", slog.String("addr", a.httpServer.Addr))

	err := a.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Stop(ctx context.Context) error {
	const op = "app.rest.Stop"
	a.log.With(slog.String("op", op)).Info("stopping REST server")
	return a.httpServer.Shutdown(ctx)
}
