package hello

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/hello-world-api/internal/platform/logging"
	"github.com/janisto/hello-world-api/internal/platform/timeutil"
)

// Register wires the hello and greet routes into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Simple hello",
		Tags:        []string{"Greetings"},
	}, getHandler)

	huma.Register(api, huma.Operation{
		OperationID: "create-greeting",
		Method:      http.MethodPost,
		Path:        "/greet",
		Summary:     "Personalized greeting",
		Tags:        []string{"Greetings"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnprocessableEntity},
	}, greetHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	logging.LogInfo(ctx, "hello get", zap.String("path", "/hello"))
	return &GetOutput{Body: Hello{Message: "Hello, World!", Timestamp: timeutil.Now()}}, nil
}

func greetHandler(ctx context.Context, input *GreetInput) (*GreetOutput, error) {
	name := input.Body.Name
	if strings.TrimSpace(name) == "" {
		return nil, huma.Error400BadRequest("Name cannot be empty")
	}
	logging.LogInfo(ctx, "greet post", zap.String("path", "/greet"), zap.Int("nameLength", len(name)))
	return &GreetOutput{Body: Greeting{
		Greeting:  fmt.Sprintf("Hello, %s!", name),
		Timestamp: timeutil.Now(),
	}}, nil
}
