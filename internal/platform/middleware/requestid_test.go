package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func captureRequestID(t *testing.T, incoming string, set bool) (string, string, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if set {
		req.Header.Set(chimiddleware.RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()

	var fromCtx, fromHeader string
	RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = chimiddleware.GetReqID(r.Context())
		fromHeader = r.Header.Get(chimiddleware.RequestIDHeader)
	})).ServeHTTP(rec, req)
	return fromCtx, fromHeader, rec
}

func TestRequestIDGeneratesUUIDv7(t *testing.T) {
	captured, inbound, rec := captureRequestID(t, "", false)

	if header := rec.Header().Get(chimiddleware.RequestIDHeader); header != captured {
		t.Fatalf("expected response header %q, got %q", captured, header)
	}
	if inbound != captured {
		t.Fatalf("expected request header rewritten to %q, got %q", captured, inbound)
	}
	parsed, err := uuid.Parse(captured)
	if err != nil {
		t.Fatalf("request ID %q is not a valid UUID: %v", captured, err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected UUIDv7, got version %d", parsed.Version())
	}
}

func TestRequestIDValidation(t *testing.T) {
	tests := []struct {
		name    string
		inputID string
		keep    bool
	}{
		{"empty generates new", "", false},
		{"alphanumeric kept", "abc123-XYZ", true},
		{"uuid kept", "550e8400-e29b-41d4-a716-446655440000", true},
		{"token punctuation kept", "req.42_a~b|c", true},
		{"max length kept", strings.Repeat("a", maxRequestIDLength), true},
		{"too long replaced", strings.Repeat("a", maxRequestIDLength+1), false},
		{"space replaced", "req id", false},
		{"separator replaced", "a/b:c", false},
		{"quote replaced", `a"b`, false},
		{"newline replaced", "abc\ninjected", false},
		{"tab replaced", "abc\tdef", false},
		{"DEL replaced", "abc\x7f", false},
		{"non-ascii replaced", "héllo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured, _, _ := captureRequestID(t, tt.inputID, true)
			if tt.keep && captured != tt.inputID {
				t.Fatalf("expected %q to be kept, got %q", tt.inputID, captured)
			}
			if !tt.keep {
				if captured == tt.inputID {
					t.Fatalf("expected %q to be replaced", tt.inputID)
				}
				if _, err := uuid.Parse(captured); err != nil {
					t.Fatalf("expected generated UUID, got %q", captured)
				}
			}
		})
	}
}
