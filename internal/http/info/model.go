package info

// Endpoint describes one public route.
type Endpoint struct {
	Path        string `json:"path"        doc:"Route path"            example:"/hello"`
	Method      string `json:"method"      doc:"HTTP method"           example:"GET"`
	Description string `json:"description" doc:"What the route serves" example:"Simple hello"`
}

// Info is the payload returned by GET /info.
type Info struct {
	Name        string     `json:"name"        doc:"Service name"           example:"Hello World API"`
	Version     string     `json:"version"     doc:"Service version"        example:"1.0.0"`
	Environment string     `json:"environment" doc:"Deployment environment" example:"development"`
	Endpoints   []Endpoint `json:"endpoints"   doc:"Public endpoints"`
}

// Output wraps Info for huma.
type Output struct {
	Body Info
}
