// Command healthcheck probes the local /health endpoint once and exits 0 when
// the service is live, 1 otherwise. It is the container HEALTHCHECK command,
// so the image needs no shell or curl.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/janisto/hello-world-api/internal/platform/probe"
)

const defaultURL = "http://127.0.0.1:8000/health"

func main() {
	os.Exit(run(context.Background(), os.Getenv))
}

func run(ctx context.Context, getenv func(string) string) int {
	url := targetURL(getenv)
	if err := probe.New(probe.DefaultTimeout).Check(ctx, url); err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck %s: %v\n", url, err)
		return 1
	}
	return 0
}

// targetURL prefers HEALTHCHECK_URL, then PORT on the loopback interface.
func targetURL(getenv func(string) string) string {
	if u := getenv("HEALTHCHECK_URL"); u != "" {
		return u
	}
	if port := getenv("PORT"); port != "" {
		return "http://127.0.0.1:" + port + "/health"
	}
	return defaultURL
}
