package router

import (
	"github.com/go-chi/chi/v5"
	"log/slog"
	"productivity-tracker/internal/http/v1/handler"
	"productivity-tracker/internal/service"
)

type StatusRouter struct {
	handler *handler.StatusHandler
}

func NewStatusRouter(statusService *service.StatusService, log *slog.Logger) *StatusRouter {
	return &StatusRouter{
		handler: handler.NewStatusHandler(statusService, log),
	}
}

func (sr *StatusRouter) SetupRoutes(r chi.Router) {
	r.Get("/healthz", sr.handler.Health)
	r.Get("/api/status", sr.handler.GetStatus)
}
