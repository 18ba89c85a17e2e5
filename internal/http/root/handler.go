package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/hello-world-api/internal/platform/logging"
)

// WelcomeMessage is the greeting returned by the root endpoint.
const WelcomeMessage = "Welcome to Hello World API"

// Register wires the root greeting route. docsPath and healthPath are echoed in
// the payload so clients can discover the rest of the API.
func Register(api huma.API, docsPath, healthPath string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Root endpoint",
		Description: "Returns a welcome message and links to the docs and health endpoints.",
		Tags:        []string{"General"},
	}, func(ctx context.Context, _ *struct{}) (*Output, error) {
		logging.LogInfo(ctx, "root get", zap.String("path", "/"))
		return &Output{Body: Welcome{
			Message: WelcomeMessage,
			Docs:    docsPath,
			Health:  healthPath,
		}}, nil
	})
}
