package v1

import (
	"github.com/go-chi/chi/v5"
	"log/slog"
	"productivity-tracker/internal/http/v1/router"
	"productivity-tracker/internal/service"
)

type Router interface {
	SetupRoutes(r chi.Router)
}

type RouterDependencies struct {
	DashboardService   *service.DashboardService
	ActivityService    *service.ActivityService
	StatusService      *service.StatusService
	ReloadService      *service.ReloadService
	IntegrationService *service.IntegrationService
}

func SetupRoutes(r chi.Router, deps *RouterDependencies, log *slog.Logger) {
	routers := []Router{
		router.NewDashboardRouter(deps.DashboardService, log),
		router.NewActivityRouter(deps.ActivityService, log),
		router.NewStatusRouter(deps.StatusService, log),
		router.NewAdminRouter(deps.ReloadService, log),
		router.NewIntegrationRouter(deps.IntegrationService, log),
		router.NewDocsRouter(),
	}

	for _, serviceRouter := range routers {
		serviceRouter.SetupRoutes(r)
	}
}
