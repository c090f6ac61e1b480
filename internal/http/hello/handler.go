package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/learnurdu/urdu-lyrics/internal/platform/logging"
	"github.com/learnurdu/urdu-lyrics/internal/platform/respond"
)

// Register adds GET /hello/ to api.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Greeting text",
		Description: "Returns the greeting as plain text. Deployment smoke checks compare the body byte for byte.",
		Tags:        []string{"Hello"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Greeting",
				Content: map[string]*huma.MediaType{
					"text/plain": {
						Schema: &huma.Schema{Type: huma.TypeString, Examples: []any{Message}},
					},
				},
			},
		},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "hello get", zap.String("path", Path))
	return &GetOutput{ContentType: contentType, Body: []byte(Message)}, nil
}

// RedirectHandler sends /hello to Path, the same way slash-appending frameworks do.
func RedirectHandler(w http.ResponseWriter, r *http.Request) {
	respond.WriteRedirect(w, r, Path, http.StatusMovedPermanently)
}
