package greeting

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"

	"github.com/learnurdu/urdu-lyrics/internal/http/hello"
	appmiddleware "github.com/learnurdu/urdu-lyrics/internal/platform/middleware"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(appmiddleware.RequestID())
	api := humachi.New(router, huma.DefaultConfig("GreetingTest", "test"))
	Register(api)
	return router
}

func TestGreetingJSON(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected application/json, got %s", ct)
	}
	var body Data
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message != hello.Message {
		t.Fatalf("expected %q, got %q", hello.Message, body.Message)
	}
}

func TestGreetingCBOR(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	req.Header.Set("Accept", "application/cbor")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Fatalf("expected application/cbor, got %s", ct)
	}
	var body Data
	if err := cbor.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode CBOR response: %v", err)
	}
	if body.Message != hello.Message {
		t.Fatalf("expected %q, got %q", hello.Message, body.Message)
	}
}
