package middleware

import (
	"net/http"
	"strings"
)

// Vary names the request headers that select the response representation.
// With no arguments it adds Accept, which picks JSON or CBOR. Names already
// listed, such as Origin from the CORS middleware, are not repeated.
func Vary(headers ...string) func(http.Handler) http.Handler {
	if len(headers) == 0 {
		headers = []string{"Accept"}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, name := range headers {
				if !varyListed(h.Values("Vary"), name) {
					h.Add("Vary", name)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func varyListed(values []string, name string) bool {
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if p := strings.TrimSpace(part); p == "*" || strings.EqualFold(p, name) {
				return true
			}
		}
	}
	return false
}
