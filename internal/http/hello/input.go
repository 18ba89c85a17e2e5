package hello

// GreetInput is the request body for a personalized greeting. Name is required;
// a blank name passes schema validation and is rejected by the handler with 400.
type GreetInput struct {
	Body struct {
		Name string `json:"name" doc:"Name to greet" example:"Alice" maxLength:"100"`
	}
}
