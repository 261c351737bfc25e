package router

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"net/http"
	"productivity-tracker/api"
)

// DocsRouter serves the OpenAPI document and a Swagger UI over it.
type DocsRouter struct{}

func NewDocsRouter() *DocsRouter {
	return &DocsRouter{}
}

func (dr *DocsRouter) SetupRoutes(r chi.Router) {
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.OpenAPI)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/openapi.yaml"),
	))
}
