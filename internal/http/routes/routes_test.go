package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/learnurdu/urdu-lyrics/internal/http/greeting"
	"github.com/learnurdu/urdu-lyrics/internal/http/health"
	"github.com/learnurdu/urdu-lyrics/internal/http/hello"
	applog "github.com/learnurdu/urdu-lyrics/internal/platform/logging"
	appmiddleware "github.com/learnurdu/urdu-lyrics/internal/platform/middleware"
	"github.com/learnurdu/urdu-lyrics/internal/platform/respond"
)

func newTestRouter() (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))
	Register(router, api)
	return router, api
}

func TestRegisterRoutes(t *testing.T) {
	router, _ := newTestRouter()

	tests := []struct {
		path   string
		status int
	}{
		{hello.Path, http.StatusOK},
		{"/hello", http.StatusMovedPermanently},
		{greeting.Path, http.StatusOK},
		{health.Path, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(chimiddleware.RequestIDHeader, "routes-test")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestRegisterRoutesOpenAPI(t *testing.T) {
	_, api := newTestRouter()
	paths := api.OpenAPI().Paths

	for _, p := range []string{hello.Path, greeting.Path} {
		if item, ok := paths[p]; !ok || item.Get == nil {
			t.Errorf("expected GET %s in OpenAPI", p)
		}
	}
	for _, p := range []string{"/hello", health.Path} {
		if _, ok := paths[p]; ok {
			t.Errorf("expected %s to stay out of OpenAPI", p)
		}
	}
}
