package handler

import (
	"log/slog"
	"net/http"
	"productivity-tracker/internal/service"
)

type TeamsResponse struct {
	Teams []string `json:"teams"`
}

type ActivityHandler struct {
	responder
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService, log *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		responder:       responder{log: log},
		activityService: activityService,
	}
}

func (h *ActivityHandler) GetUserStories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.activityService.UserStories(r.Context(), teamParam(r)))
}

func (h *ActivityHandler) GetPullRequests(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.activityService.PullRequests(r.Context(), teamParam(r)))
}

func (h *ActivityHandler) GetTesting(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.activityService.Testing(r.Context(), teamParam(r)))
}

func (h *ActivityHandler) GetProdSupport(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.activityService.ProdSupport(r.Context(), teamParam(r)))
}

func (h *ActivityHandler) GetProdIssues(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.activityService.ProdIssues(r.Context(), teamParam(r)))
}

func (h *ActivityHandler) GetTeams(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, TeamsResponse{Teams: h.activityService.Teams(r.Context())})
}
