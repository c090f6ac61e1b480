package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/learnurdu/urdu-lyrics/internal/http/greeting"
	"github.com/learnurdu/urdu-lyrics/internal/http/health"
	"github.com/learnurdu/urdu-lyrics/internal/http/hello"
)

// Register wires all HTTP routes. Operations go through api so they appear in
// OpenAPI; the redirect and health check are mounted on router directly.
func Register(router chi.Router, api huma.API) {
	router.Get("/hello", hello.RedirectHandler)
	router.Get(health.Path, health.Handler)

	hello.Register(api)
	greeting.Register(api)
}
