package contract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
)

// maxBodyBytes caps how much of a remote response body is read.
const maxBodyBytes = 1 << 20

// HandlerTarget serves requests in-process through an http.Handler, without a socket.
type HandlerTarget struct {
	Handler http.Handler
}

// Do implements Target.
func (t HandlerTarget) Do(ctx context.Context, method, path string) (*Response, error) {
	if t.Handler == nil {
		return nil, fmt.Errorf("handler target: nil handler")
	}
	req := httptest.NewRequestWithContext(ctx, method, path, nil)
	rec := httptest.NewRecorder()
	t.Handler.ServeHTTP(rec, req)
	return &Response{Status: rec.Code, Body: rec.Body.Bytes()}, nil
}

// HTTPTarget sends requests to a running deployment rooted at BaseURL.
// Redirects are not followed, so the status is the one served at the path itself.
type HTTPTarget struct {
	BaseURL string
	Client  *http.Client
}

// Do implements Target.
func (t HTTPTarget) Do(ctx context.Context, method, path string) (*Response, error) {
	url := strings.TrimRight(t.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := t.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Response{Status: resp.StatusCode, Body: body}, nil
}

func (t HTTPTarget) client() *http.Client {
	c := http.Client{}
	if t.Client != nil {
		c = *t.Client
	}
	c.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &c
}
