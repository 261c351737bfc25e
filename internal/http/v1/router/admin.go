package router

import (
	"github.com/go-chi/chi/v5"
	"log/slog"
	"productivity-tracker/internal/http/v1/handler"
	"productivity-tracker/internal/service"
)

type AdminRouter struct {
	handler *handler.AdminHandler
}

func NewAdminRouter(reloadService *service.ReloadService, log *slog.Logger) *AdminRouter {
	return &AdminRouter{
		handler: handler.NewAdminHandler(reloadService, log),
	}
}

func (ar *AdminRouter) SetupRoutes(r chi.Router) {
	r.Post("/api/admin/reload", ar.handler.Reload)
}
