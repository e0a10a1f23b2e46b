package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"iot-system/internal/agent"
	"iot-system/internal/config"
	"iot-system/internal/version"
	"iot-system/pkg/logging"
)

func main() {
	cfg, err := config.LoadAgentConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.NewLoggerWithFormat(
		logging.ParseLevel(os.Getenv("LOG_LEVEL")),
		os.Getenv("LOG_FORMAT"),
	)

	svc, err := agent.NewService(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize agent service", "error", err)
		os.Exit(1)
	}
	defer svc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("agent started", "version", version.Get(), "topic", cfg.Mqtt.Topic)
	if err := svc.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("agent stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("agent stopped")
}
