package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iot-system/internal/config"
	"iot-system/internal/store"
	"iot-system/internal/version"
	"iot-system/pkg/logging"
)

func main() {
	cfg, err := config.LoadStoreConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.NewLoggerWithFormat(
		logging.ParseLevel(os.Getenv("LOG_LEVEL")),
		os.Getenv("LOG_FORMAT"),
	)

	svc, err := store.NewService(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize store service", "error", err)
		os.Exit(1)
	}

	logger.Info("store started", "version", version.Get(), "port", cfg.Server.Port, "grpc_port", cfg.Grpc.Port)

	errs := make(chan error, 1)
	go func() {
		errs <- svc.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		if err != nil {
			logger.Error("store stopped with error", "error", err)
			os.Exit(1)
		}
	case <-quit:
		logger.Info("shutting down store")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := svc.Shutdown(ctx); err != nil {
			logger.Error("store forced to shutdown", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("store stopped")
}
