package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/learnurdu/urdu-lyrics/internal/platform/config"
	applog "github.com/learnurdu/urdu-lyrics/internal/platform/logging"
	"github.com/learnurdu/urdu-lyrics/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, Version); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		stop()
		_ = applog.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, version string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	applog.LogInfo(ctx, "starting server", zap.String("version", version), zap.String("addr", cfg.Addr()))

	srv := server.New(cfg, server.NewRouter(version))
	return server.Run(ctx, srv, cfg.ShutdownTimeout)
}
