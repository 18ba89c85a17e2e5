package info

import (
	"cmp"
	"context"
	"net/http"
	"slices"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/hello-world-api/internal/platform/logging"
)

// Path is where the info route is served.
const Path = "/info"

// Meta identifies the running service.
type Meta struct {
	Name        string
	Version     string
	Environment string
}

// Register wires GET /info. The endpoint list is built per request from the
// operations registered on api plus extra, which covers plain chi routes that
// huma does not know about.
func Register(api huma.API, meta Meta, extra []Endpoint) {
	huma.Register(api, huma.Operation{
		OperationID: "get-info",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Service information",
		Description: "Returns the service name, version, environment and public endpoints.",
		Tags:        []string{"General"},
	}, func(ctx context.Context, _ *struct{}) (*Output, error) {
		endpoints := Endpoints(api.OpenAPI(), extra)
		logging.LogInfo(ctx, "info get", zap.Int("endpoints", len(endpoints)))
		return &Output{Body: Info{
			Name:        meta.Name,
			Version:     meta.Version,
			Environment: meta.Environment,
			Endpoints:   endpoints,
		}}, nil
	})
}

// Endpoints lists the operations in doc together with extra, sorted by path
// then method.
func Endpoints(doc *huma.OpenAPI, extra []Endpoint) []Endpoint {
	out := make([]Endpoint, 0, len(extra)+8)
	out = append(out, extra...)
	if doc != nil {
		for path, item := range doc.Paths {
			if item == nil {
				continue
			}
			for method, op := range map[string]*huma.Operation{
				http.MethodGet:    item.Get,
				http.MethodPost:   item.Post,
				http.MethodPut:    item.Put,
				http.MethodPatch:  item.Patch,
				http.MethodDelete: item.Delete,
			} {
				if op == nil || op.Hidden {
					continue
				}
				out = append(out, Endpoint{Path: path, Method: method, Description: op.Summary})
			}
		}
	}
	slices.SortFunc(out, func(a, b Endpoint) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Method, b.Method))
	})
	return slices.CompactFunc(out, func(a, b Endpoint) bool {
		return a.Path == b.Path && a.Method == b.Method
	})
}
