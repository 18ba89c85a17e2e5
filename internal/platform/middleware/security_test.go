package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityMiddlewareSetsHeaders(t *testing.T) {
	h := Security()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	tests := []struct {
		header string
		want   string
	}{
		{"Cache-Control", "no-store"},
		{"Content-Security-Policy", "frame-ancestors 'none'"},
		{"Cross-Origin-Opener-Policy", "same-origin"},
		{"Cross-Origin-Resource-Policy", "same-origin"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
	}
	for _, tt := range tests {
		if got := resp.Header().Get(tt.header); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.header, tt.want, got)
		}
	}
	if resp.Header().Get("Permissions-Policy") == "" {
		t.Error("expected Permissions-Policy to be set")
	}
}

func TestSecurityMiddlewareSkipsPaths(t *testing.T) {
	h := Security("/docs")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		path    string
		skipped bool
	}{
		{"/docs", true},
		{"/docs/", true},
		{"/docs/assets/app.js", true},
		{"/docsfoo", false},
		{"/documents", false},
		{"/", false},
	}
	for _, tt := range tests {
		resp := httptest.NewRecorder()
		h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, tt.path, nil))

		got := resp.Header().Get("X-Frame-Options")
		if tt.skipped && got != "" {
			t.Errorf("%s: expected no security headers, got X-Frame-Options %q", tt.path, got)
		}
		if !tt.skipped && got != "DENY" {
			t.Errorf("%s: expected X-Frame-Options DENY, got %q", tt.path, got)
		}
	}
}

func TestSecurityMiddlewareKeepsPresetHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	preset := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "max-age=60")
			next.ServeHTTP(w, r)
		})
	}

	resp := httptest.NewRecorder()
	preset(Security()(inner)).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := resp.Header().Get("Cache-Control"); got != "max-age=60" {
		t.Fatalf("expected preset Cache-Control to win, got %q", got)
	}
}
