package hello

import (
	"net/http"

	"github.com/learnurdu/urdu-lyrics/internal/contract"
)

const (
	// Path is where the greeting is served. The trailing slash is significant.
	Path = "/hello/"

	// Message is the exact body served at Path.
	Message = "Hello World, Learn Urdu, checking the automate deployment process"

	contentType = "text/plain; charset=utf-8"
)

// Contract is what every deployment must serve at Path.
var Contract = contract.Expectation{
	Method: http.MethodGet,
	Path:   Path,
	Status: http.StatusOK,
	Body:   Message,
}

// GetOutput is the raw text response for Path.
type GetOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
