// Package probe performs a single liveness check against a running server, the
// way the container runtime does on its HEALTHCHECK interval.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout matches the per-attempt timeout of the container health check.
const DefaultTimeout = 3 * time.Second

// StatusOK is the only status value a live server reports.
const StatusOK = "ok"

// ErrUnhealthy is returned when the server answered but did not report itself live.
var ErrUnhealthy = errors.New("probe: server unhealthy")

// maxBodyBytes bounds how much of the health response is read.
const maxBodyBytes = 4 << 10

// Prober issues liveness checks with a dedicated HTTP client.
type Prober struct {
	client *http.Client
}

// New returns a Prober whose requests time out after timeout. A non-positive
// timeout selects DefaultTimeout.
func New(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Prober{client: &http.Client{Timeout: timeout}}
}

// Check sends GET url and succeeds only for HTTP 200 with {"status":"ok"}.
func (p *Prober) Check(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("probe: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("probe: request %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status code %d", ErrUnhealthy, resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return fmt.Errorf("%w: decode body: %v", ErrUnhealthy, err)
	}
	if body.Status != StatusOK {
		return fmt.Errorf("%w: status %q", ErrUnhealthy, body.Status)
	}
	return nil
}
