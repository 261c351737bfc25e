package handler

import (
	"log/slog"
	"net/http"
	"productivity-tracker/internal/lib/logger/sl"
	"productivity-tracker/internal/service"
)

type StatusHandler struct {
	responder
	statusService *service.StatusService
}

func NewStatusHandler(statusService *service.StatusService, log *slog.Logger) *StatusHandler {
	return &StatusHandler{
		responder:     responder{log: log},
		statusService: statusService,
	}
}

func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.statusService.Status(r.Context()))
}

func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.statusService.Health(r.Context()); err != nil {
		h.log.Warn("health check failed", sl.Err(err))
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not loaded"})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
