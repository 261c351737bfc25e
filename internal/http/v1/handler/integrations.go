package handler

import (
	"log/slog"
	"net/http"
	"productivity-tracker/internal/service"
)

type IntegrationHandler struct {
	responder
	integrationService *service.IntegrationService
}

func NewIntegrationHandler(integrationService *service.IntegrationService, log *slog.Logger) *IntegrationHandler {
	return &IntegrationHandler{
		responder:          responder{log: log},
		integrationService: integrationService,
	}
}

func (h *IntegrationHandler) GetDocumentation(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.integrationService.Documentation(r.Context()))
}

func (h *IntegrationHandler) GetPipelines(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.integrationService.Pipelines(r.Context()))
}
