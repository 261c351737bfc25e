package router

import (
	"github.com/go-chi/chi/v5"
	"log/slog"
	"productivity-tracker/internal/http/v1/handler"
	"productivity-tracker/internal/service"
)

type IntegrationRouter struct {
	handler *handler.IntegrationHandler
}

func NewIntegrationRouter(integrationService *service.IntegrationService, log *slog.Logger) *IntegrationRouter {
	return &IntegrationRouter{
		handler: handler.NewIntegrationHandler(integrationService, log),
	}
}

func (ir *IntegrationRouter) SetupRoutes(r chi.Router) {
	r.Get("/api/documentation", ir.handler.GetDocumentation)
	r.Get("/api/pipelines", ir.handler.GetPipelines)
}
