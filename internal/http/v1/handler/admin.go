package handler

import (
	"log/slog"
	"net/http"
	"productivity-tracker/internal/lib/logger/sl"
	"productivity-tracker/internal/service"
)

type AdminHandler struct {
	responder
	reloadService *service.ReloadService
}

func NewAdminHandler(reloadService *service.ReloadService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		responder:     responder{log: log},
		reloadService: reloadService,
	}
}

func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	const op = "handler.admin.Reload"

	log := h.log.With(slog.String("op", op))

	log.Info("handling reload request")

	res, err := h.reloadService.Reload(r.Context())
	if err != nil {
		log.Error("reload failed", sl.Err(err))
		h.writeErrorResponse(w, http.StatusServiceUnavailable, codeReloadFailed, "failed to reload dataset")
		return
	}

	h.writeJSON(w, http.StatusOK, res)
	log.Info("dataset reloaded",
		slog.String("source", res.Source),
		slog.Int("user_stories", res.Counts.Stories),
		slog.Int("pull_requests", res.Counts.PullRequests))
}
