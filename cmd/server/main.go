package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/janisto/hello-world-api/internal/config"
	"github.com/janisto/hello-world-api/internal/platform/logging"
	"github.com/janisto/hello-world-api/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	defer func() {
		_ = logging.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		logging.LogError(context.Background(), "config error", err)
		return 1
	}
	if err := logging.Init(cfg, Version); err != nil {
		logging.LogError(context.Background(), "logger init error", err, zap.String("level", cfg.LogLevel))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, Version).Run(ctx); err != nil {
		logging.LogError(context.Background(), "server error", err, zap.String("addr", cfg.Addr()))
		return 1
	}
	return 0
}
