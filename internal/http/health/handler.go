package health

import (
	"encoding/json"
	"net/http"

	"github.com/learnurdu/urdu-lyrics/internal/platform/timeutil"
)

// Path is where the health check is mounted.
const Path = "/health"

// Response is the payload for the health endpoint.
type Response struct {
	Status    string        `json:"status"`
	Timestamp timeutil.Time `json:"timestamp"`
}

// Handler is a plain HTTP handler for the health check endpoint.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(Response{Status: "healthy", Timestamp: timeutil.Now()})
}
