package hello

import "github.com/janisto/hello-world-api/internal/platform/timeutil"

// Hello models the response payload for GET /hello.
type Hello struct {
	Message   string        `json:"message"   doc:"Greeting message"            example:"Hello, World!"`
	Timestamp timeutil.Time `json:"timestamp" doc:"Server time of the response" example:"2024-01-15T10:30:00.000Z"`
}

// GetOutput is the response wrapper for GET /hello.
type GetOutput struct {
	Body Hello
}

// Greeting models the response payload for POST /greet.
type Greeting struct {
	Greeting  string        `json:"greeting"  doc:"Personalized greeting"       example:"Hello, Alice!"`
	Timestamp timeutil.Time `json:"timestamp" doc:"Server time of the response" example:"2024-01-15T10:30:00.000Z"`
}

// GreetOutput is the response wrapper for POST /greet.
type GreetOutput struct {
	Body Greeting
}
