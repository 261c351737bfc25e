package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"productivity-tracker/internal/apperrors"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/logger/sl"
	"productivity-tracker/internal/metrics"
	"productivity-tracker/internal/service"
	"strconv"
)

const defaultPeriod = "week"

type InsightsResponse struct {
	Insights []models.Insight `json:"insights"`
}

type DashboardHandler struct {
	responder
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService, log *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		responder:        responder{log: log},
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.dashboardService.Overview(r.Context(), teamParam(r)))
}

func (h *DashboardHandler) GetTimeDistribution(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = defaultPeriod
	}

	h.writeJSON(w, http.StatusOK, h.dashboardService.TimeDistribution(r.Context(), period, teamParam(r)))
}

func (h *DashboardHandler) GetTeamPerformance(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.dashboardService.TeamPerformance(r.Context(), teamParam(r)))
}

func (h *DashboardHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, InsightsResponse{
		Insights: h.dashboardService.Insights(r.Context(), teamParam(r)),
	})
}

func (h *DashboardHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	const op = "handler.dashboard.GetTrends"

	log := h.log.With(slog.String("op", op))

	days := metrics.DefaultTrendDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn("invalid days parameter", slog.String("days", raw))
			h.writeErrorResponse(w, http.StatusBadRequest, codeInvalidDays, apperrors.ErrInvalidDays.Error())
			return
		}
		days = parsed
	}

	trends, err := h.dashboardService.Trends(r.Context(), days, teamParam(r))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDays) {
			h.writeErrorResponse(w, http.StatusBadRequest, codeInvalidDays, apperrors.ErrInvalidDays.Error())
			return
		}
		log.Error("failed to build trends", sl.Err(err))
		h.writeErrorResponse(w, http.StatusInternalServerError, codeInternalError, "failed to build trends")
		return
	}

	h.writeJSON(w, http.StatusOK, trends)
}

// teamParam is the optional team filter; empty means all teams.
func teamParam(r *http.Request) string {
	return r.URL.Query().Get("team")
}
