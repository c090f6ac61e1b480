package greeting

// Data is the structured greeting.
type Data struct {
	Message string `json:"message" doc:"Greeting text" example:"Hello World, Learn Urdu, checking the automate deployment process"`
}

// GetOutput wraps Data for huma.
type GetOutput struct {
	Body Data
}
