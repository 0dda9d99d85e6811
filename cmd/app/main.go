package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"unrivaled-games-service/internal/app"
	"unrivaled-games-service/internal/config"
	"unrivaled-games-service/internal/logging"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_APP_RUN") == "1" {
		return
	}

	// Optional; a missing .env just means env vars come from the process.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "unrivaled-games-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logging.Error(logger, "startup failed", err)
		os.Exit(1)
	}
	if err := a.Run(ctx); err != nil {
		logging.Error(logger, "run failed", err)
		os.Exit(1)
	}
}
