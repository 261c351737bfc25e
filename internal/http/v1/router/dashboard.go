package router

import (
	"github.com/go-chi/chi/v5"
	"log/slog"
	"productivity-tracker/internal/http/v1/handler"
	"productivity-tracker/internal/service"
)

type DashboardRouter struct {
	handler *handler.DashboardHandler
}

func NewDashboardRouter(dashboardService *service.DashboardService, log *slog.Logger) *DashboardRouter {
	return &DashboardRouter{
		handler: handler.NewDashboardHandler(dashboardService, log),
	}
}

func (dr *DashboardRouter) SetupRoutes(r chi.Router) {
	r.Get("/api/overview", dr.handler.GetOverview)
	r.Get("/api/time-distribution", dr.handler.GetTimeDistribution)
	r.Get("/api/team-performance", dr.handler.GetTeamPerformance)
	r.Get("/api/insights", dr.handler.GetInsights)
	r.Get("/api/trends", dr.handler.GetTrends)
}
