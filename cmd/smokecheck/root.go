package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/learnurdu/urdu-lyrics/internal/contract"
	"github.com/learnurdu/urdu-lyrics/internal/http/hello"
	"github.com/learnurdu/urdu-lyrics/internal/platform/config"
	applog "github.com/learnurdu/urdu-lyrics/internal/platform/logging"
)

const (
	checkStatus = "status"
	checkBody   = "body"
	checkAll    = "all"
)

var errMissingBaseURL = errors.New("base URL is required: pass --base-url or set SMOKE_BASE_URL")

type options struct {
	baseURL string
	timeout time.Duration
	check   string
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := options{
		baseURL: cfg.SmokeBaseURL,
		timeout: cfg.SmokeTimeout,
		check:   checkAll,
	}

	cmd := &cobra.Command{
		Use:   "smokecheck",
		Short: "Check that a deployment serves the hello endpoint",
		Long: fmt.Sprintf(
			"Sends %s %s to the deployment and compares the response with the expected status %d and body %q.",
			hello.Contract.Method, hello.Contract.Path, hello.Contract.Status, hello.Contract.Body,
		),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChecks(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.baseURL, "base-url", opts.baseURL, "deployment root, e.g. https://lyrics.example.com (env SMOKE_BASE_URL)")
	flags.DurationVar(&opts.timeout, "timeout", opts.timeout, "timeout for the whole check (env SMOKE_TIMEOUT)")
	flags.StringVar(&opts.check, "check", opts.check, "which check to run: status, body or all")

	return cmd
}

func (o options) validate() error {
	if o.baseURL == "" {
		return errMissingBaseURL
	}
	if o.timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", o.timeout)
	}
	switch o.check {
	case checkStatus, checkBody, checkAll:
		return nil
	default:
		return fmt.Errorf("unknown check %q", o.check)
	}
}

func runChecks(cmd *cobra.Command, opts options) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	target := contract.HTTPTarget{
		BaseURL: opts.baseURL,
		Client:  &http.Client{Timeout: opts.timeout},
	}
	checker := contract.New(target, hello.Contract)

	var err error
	switch opts.check {
	case checkStatus:
		err = checker.CheckStatus(ctx)
	case checkBody:
		err = checker.CheckBody(ctx)
	default:
		err = checker.Check(ctx)
	}

	fields := []zap.Field{
		zap.String("base_url", opts.baseURL),
		zap.String("endpoint", checker.Expectation().String()),
		zap.String("check", opts.check),
	}
	if err != nil {
		applog.LogError(ctx, "smoke check failed", err, fields...)
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s\n", checker.Expectation())
		return err
	}
	applog.LogInfo(ctx, "smoke check passed", fields...)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "PASS %s\n", checker.Expectation())
	return nil
}
