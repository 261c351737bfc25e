package router

import (
	"github.com/go-chi/chi/v5"
	"log/slog"
	"productivity-tracker/internal/http/v1/handler"
	"productivity-tracker/internal/service"
)

type ActivityRouter struct {
	handler *handler.ActivityHandler
}

func NewActivityRouter(activityService *service.ActivityService, log *slog.Logger) *ActivityRouter {
	return &ActivityRouter{
		handler: handler.NewActivityHandler(activityService, log),
	}
}

func (ar *ActivityRouter) SetupRoutes(r chi.Router) {
	r.Get("/api/user-stories", ar.handler.GetUserStories)
	r.Get("/api/pull-requests", ar.handler.GetPullRequests)
	r.Get("/api/testing", ar.handler.GetTesting)
	r.Get("/api/prod-support", ar.handler.GetProdSupport)
	r.Get("/api/prod-issues", ar.handler.GetProdIssues)
	r.Get("/api/teams", ar.handler.GetTeams)
}
