package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/learnurdu/urdu-lyrics/internal/contract"
	"github.com/learnurdu/urdu-lyrics/internal/http/hello"
	"github.com/learnurdu/urdu-lyrics/internal/platform/config"
	"github.com/learnurdu/urdu-lyrics/internal/server"
)

func executeCmd(t *testing.T, cfg config.Config, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(cfg)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func defaultConfig() config.Config {
	return config.Config{SmokeTimeout: 5 * time.Second}
}

func TestSmokeCheckPassesAgainstService(t *testing.T) {
	ts := httptest.NewServer(server.NewRouter("test"))
	defer ts.Close()

	for _, check := range []string{checkStatus, checkBody, checkAll} {
		t.Run(check, func(t *testing.T) {
			stdout, _, err := executeCmd(t, defaultConfig(), "--base-url", ts.URL, "--check", check)
			if err != nil {
				t.Fatalf("expected pass, got %v", err)
			}
			if !strings.Contains(stdout, "PASS GET "+hello.Path) {
				t.Fatalf("expected PASS line, got %q", stdout)
			}
		})
	}
}

func TestSmokeCheckUsesConfiguredBaseURL(t *testing.T) {
	ts := httptest.NewServer(server.NewRouter("test"))
	defer ts.Close()

	cfg := defaultConfig()
	cfg.SmokeBaseURL = ts.URL + "/"
	if _, _, err := executeCmd(t, cfg); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestSmokeCheckFailsOnWrongBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(hello.Message + "\n"))
	}))
	defer ts.Close()

	_, stderr, err := executeCmd(t, defaultConfig(), "--base-url", ts.URL)
	if !errors.Is(err, contract.ErrMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	if !strings.Contains(stderr, "FAIL GET "+hello.Path) {
		t.Fatalf("expected FAIL line, got %q", stderr)
	}

	if _, _, err := executeCmd(t, defaultConfig(), "--base-url", ts.URL, "--check", checkStatus); err != nil {
		t.Fatalf("status-only check should pass, got %v", err)
	}
}

func TestSmokeCheckFailsOnServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, _, err := executeCmd(t, defaultConfig(), "--base-url", ts.URL, "--check", checkStatus)
	var mismatch *contract.MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *contract.MismatchError, got %v", err)
	}
	if mismatch.Kind != contract.KindStatus {
		t.Fatalf("expected status mismatch, got %v", mismatch.Kind)
	}
}

func TestSmokeCheckUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing base url", nil, "base URL is required"},
		{"unknown check", []string{"--base-url", "http://127.0.0.1:1", "--check", "headers"}, `unknown check "headers"`},
		{"zero timeout", []string{"--base-url", "http://127.0.0.1:1", "--timeout", "0s"}, "timeout must be positive"},
		{"extra args", []string{"--base-url", "http://127.0.0.1:1", "extra"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCmd(t, defaultConfig(), tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
