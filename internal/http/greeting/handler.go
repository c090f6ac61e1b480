package greeting

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/learnurdu/urdu-lyrics/internal/http/hello"
	applog "github.com/learnurdu/urdu-lyrics/internal/platform/logging"
)

// Path serves the greeting as JSON or CBOR.
const Path = "/greeting"

// Register adds GET /greeting to api.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-greeting",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Structured greeting",
		Description: "Returns the same greeting as /hello/ wrapped in an object. Send Accept: application/cbor for CBOR.",
		Tags:        []string{"Hello"},
	}, func(ctx context.Context, _ *struct{}) (*GetOutput, error) {
		applog.LogInfo(ctx, "greeting get")
		return &GetOutput{Body: Data{Message: hello.Message}}, nil
	})
}
