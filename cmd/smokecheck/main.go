// Command smokecheck verifies that a deployed service serves the /hello/ contract.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/learnurdu/urdu-lyrics/internal/platform/config"
	applog "github.com/learnurdu/urdu-lyrics/internal/platform/logging"
)

func main() {
	os.Exit(execute())
}

func execute() int {
	defer func() { _ = applog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(ctx, "config load failed", err)
		return 2
	}
	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
