package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/hello-world-api/internal/http/hello"
	"github.com/janisto/hello-world-api/internal/http/info"
	"github.com/janisto/hello-world-api/internal/http/root"
)

// Options carries the values the route handlers echo back to clients.
type Options struct {
	DocsPath   string
	HealthPath string
	Meta       info.Meta
	// Plain lists routes mounted directly on the router so /info can report them.
	Plain []info.Endpoint
}

// Register wires all huma operations into the provided API.
func Register(api huma.API, opts Options) {
	root.Register(api, opts.DocsPath, opts.HealthPath)
	hello.Register(api)
	info.Register(api, opts.Meta, opts.Plain)
}
