package root

// Welcome models the greeting payload of the root endpoint.
type Welcome struct {
	Message string `json:"message" doc:"Greeting message"          example:"Welcome to Hello World API"`
	Docs    string `json:"docs"    doc:"Path of the API docs UI"   example:"/docs"`
	Health  string `json:"health"  doc:"Path of the liveness probe" example:"/health"`
}

// Output is the response wrapper for the root endpoint.
type Output struct {
	Body Welcome
}
