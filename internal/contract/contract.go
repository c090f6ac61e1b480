// Package contract verifies that an HTTP endpoint answers a fixed request with an
// expected status code and an exact body.
package contract

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrMismatch matches every *MismatchError via errors.Is.
var ErrMismatch = errors.New("contract mismatch")

// Kind tells which property of the response failed.
type Kind string

const (
	KindStatus Kind = "status"
	KindBody   Kind = "body"
)

// Expectation is the fixed request to send and the response it must produce.
type Expectation struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e Expectation) String() string {
	return e.Method + " " + e.Path
}

// Response is what a Target observed for one request.
type Response struct {
	Status int
	Body   []byte
}

// Target sends a single request and returns the response.
type Target interface {
	Do(ctx context.Context, method, path string) (*Response, error)
}

// MismatchError reports a response that did not meet the expectation.
type MismatchError struct {
	Kind     Kind
	Endpoint string
	Want     string
	Got      string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s mismatch: want %s, got %s", e.Endpoint, e.Kind, e.Want, e.Got)
}

// Is reports ErrMismatch as a match.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// Checker runs the status and body checks for one expectation.
type Checker struct {
	target Target
	expect Expectation
}

// New returns a Checker that sends expect's request to target.
func New(target Target, expect Expectation) *Checker {
	return &Checker{target: target, expect: expect}
}

// Expectation returns the checked expectation.
func (c *Checker) Expectation() Expectation {
	return c.expect
}

// CheckStatus fails with a KindStatus mismatch unless the status code is the expected one.
func (c *Checker) CheckStatus(ctx context.Context) error {
	resp, err := c.fetch(ctx)
	if err != nil {
		return err
	}
	if resp.Status != c.expect.Status {
		return &MismatchError{
			Kind:     KindStatus,
			Endpoint: c.expect.String(),
			Want:     fmt.Sprint(c.expect.Status),
			Got:      fmt.Sprint(resp.Status),
		}
	}
	return nil
}

// CheckBody decodes the body as UTF-8 and fails with a KindBody mismatch unless it equals
// the expected text exactly.
func (c *Checker) CheckBody(ctx context.Context) error {
	resp, err := c.fetch(ctx)
	if err != nil {
		return err
	}
	if !utf8.Valid(resp.Body) {
		return &MismatchError{
			Kind:     KindBody,
			Endpoint: c.expect.String(),
			Want:     fmt.Sprintf("%q", c.expect.Body),
			Got:      fmt.Sprintf("%d bytes of invalid UTF-8", len(resp.Body)),
		}
	}
	if got := string(resp.Body); got != c.expect.Body {
		return &MismatchError{
			Kind:     KindBody,
			Endpoint: c.expect.String(),
			Want:     fmt.Sprintf("%q", c.expect.Body),
			Got:      fmt.Sprintf("%q", got),
		}
	}
	return nil
}

// Check runs both checks, each with its own request, and joins their failures.
func (c *Checker) Check(ctx context.Context) error {
	return errors.Join(c.CheckStatus(ctx), c.CheckBody(ctx))
}

func (c *Checker) fetch(ctx context.Context) (*Response, error) {
	resp, err := c.target.Do(ctx, c.expect.Method, c.expect.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.expect, err)
	}
	return resp, nil
}
