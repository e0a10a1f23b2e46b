package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"iot-system/internal/config"
	"iot-system/internal/hub"
	"iot-system/internal/version"
	"iot-system/pkg/logging"
)

func main() {
	cfg, err := config.LoadHubConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.NewLoggerWithFormat(
		logging.ParseLevel(os.Getenv("LOG_LEVEL")),
		os.Getenv("LOG_FORMAT"),
	)

	svc, err := hub.NewService(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize hub service", "error", err)
		os.Exit(1)
	}
	defer svc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("hub started", "version", version.Get(), "batch_size", cfg.BatchSize)
	if err := svc.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("hub stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("hub stopped")
}
