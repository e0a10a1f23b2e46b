package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"iot-system/internal/config"
	"iot-system/internal/edge"
	"iot-system/internal/version"
	"iot-system/pkg/logging"
)

func main() {
	cfg, err := config.LoadEdgeConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.NewLoggerWithFormat(
		logging.ParseLevel(os.Getenv("LOG_LEVEL")),
		os.Getenv("LOG_FORMAT"),
	)

	svc, err := edge.NewService(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize edge service", "error", err)
		os.Exit(1)
	}
	defer svc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("edge started", "version", version.Get(), "topic", cfg.Mqtt.Topic)
	if err := svc.Run(ctx); err != nil {
		logger.Error("edge stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("edge stopped")
}
