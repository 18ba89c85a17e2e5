package health

import (
	"encoding/json"
	"net/http"
)

// Status is the liveness state reported by the health endpoint.
type Status string

// StatusOK is the only state the liveness check reports.
const StatusOK Status = "ok"

// Path is where supervisors poll for liveness.
const Path = "/health"

// Response is the payload for the health endpoint.
type Response struct {
	Status Status `json:"status"`
}

// Handler is a plain HTTP handler for the health check endpoint. It stays
// outside huma so the body is exactly {"status":"ok"} without a $schema link.
// Only reachability is checked; there are no dependencies to inspect.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Response{Status: StatusOK})
}
