package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/janisto/hello-world-api/internal/config"
	"github.com/janisto/hello-world-api/internal/http/health"
	"github.com/janisto/hello-world-api/internal/platform/probe"
	"github.com/janisto/hello-world-api/internal/server"
	"github.com/janisto/hello-world-api/internal/testutil"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestTargetURL(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"default", nil, defaultURL},
		{"port", map[string]string{"PORT": "9090"}, "http://127.0.0.1:9090/health"},
		{"explicit url wins", map[string]string{"PORT": "9090", "HEALTHCHECK_URL": "http://x/health"}, "http://x/health"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := targetURL(envFrom(tc.env)); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestRunHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(health.Handler))
	defer srv.Close()

	code := run(context.Background(), envFrom(map[string]string{"HEALTHCHECK_URL": srv.URL}))
	if code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
}

func TestRunUnhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	code := run(context.Background(), envFrom(map[string]string{"HEALTHCHECK_URL": srv.URL}))
	if code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
}

func TestRunAgainstServerOnPort(t *testing.T) {
	port := testutil.FreePort(t)
	cfg := &config.Config{
		Host:            "127.0.0.1",
		Port:            port,
		ShutdownTimeout: 5 * time.Second,
		Environment:     "test",
		LogLevel:        "warn",
		MetricsEnabled:  true,
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.New(cfg, "test").Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("server did not shut down")
		}
	})
	testutil.WaitForPort(t, cfg.Addr(), 3*time.Second)

	start := time.Now()
	code := run(context.Background(), envFrom(map[string]string{"PORT": strconv.Itoa(port)}))
	if code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if elapsed := time.Since(start); elapsed > probe.DefaultTimeout {
		t.Fatalf("probe took %s, longer than %s", elapsed, probe.DefaultTimeout)
	}
}

func TestRunNothingListening(t *testing.T) {
	port := testutil.FreePort(t)

	code := run(context.Background(), envFrom(map[string]string{"PORT": strconv.Itoa(port)}))
	if code != 1 {
		t.Fatalf("expected 1, got %d", code)
	}
}
