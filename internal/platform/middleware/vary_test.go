package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVaryMiddlewareSetsHeader(t *testing.T) {
	h := Vary()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom", "value")
		w.WriteHeader(http.StatusCreated)
	}))

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := resp.Header().Get("Vary"); got != "Accept" {
		t.Fatalf("expected Vary: Accept, got %q", got)
	}
	if resp.Code != http.StatusCreated || resp.Header().Get("X-Custom") != "value" {
		t.Fatal("expected downstream response to be preserved")
	}
}

func TestVaryDoesNotRepeatListedNames(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		headers  []string
		want     []string
	}{
		{"adds missing", []string{"Origin"}, []string{"Accept"}, []string{"Origin", "Accept"}},
		{"case insensitive", []string{"accept"}, []string{"Accept"}, []string{"accept"}},
		{"inside list", []string{"Origin, Accept"}, []string{"Accept"}, []string{"Origin, Accept"}},
		{"wildcard covers all", []string{"*"}, []string{"Accept"}, []string{"*"}},
		{"several names", nil, []string{"Accept", "Accept-Encoding", "Accept"}, []string{"Accept", "Accept-Encoding"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			for _, v := range tt.existing {
				resp.Header().Add("Vary", v)
			}
			Vary(tt.headers...)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
				ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

			got := resp.Header().Values("Vary")
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}
