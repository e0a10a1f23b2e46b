// Package agent replays recorded accelerometer and GPS samples over MQTT
// at a fixed rate, standing in for a physical device in the field.
package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"iot-system/internal/config"
	"iot-system/internal/domain"
	"iot-system/internal/mqttutil"
)

const (
	accelerometerFile = "data/accelerometer.csv"
	gpsFile           = "data/gps.csv"

	// samples is buffered so the reader can run ahead of a momentarily
	// slow publisher without blocking the replay ticker.
	samplesCapacity = 7
)

// Service reads samples from the file data source and publishes each one
// as JSON to the configured mqtt topic, one per fixed period.
type Service struct {
	cfg    config.AgentConfig
	logger *slog.Logger

	client mqtt.Client
	source *FileDataSource
}

func NewService(cfg config.AgentConfig, logger *slog.Logger) (*Service, error) {
	client, err := mqttutil.Connect(cfg.Mqtt, "agent", logger)
	if err != nil {
		return nil, err
	}

	source := NewFileDataSource(accelerometerFile, gpsFile)
	if err := source.Start(); err != nil {
		client.Disconnect(250)
		return nil, err
	}

	return &Service{
		cfg:    cfg,
		logger: logger,
		client: client,
		source: source,
	}, nil
}

// Run drives the reader and publisher loops until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	samples := make(chan domain.Agent, samplesCapacity)
	errs := make(chan error, 2)

	go s.readLoop(ctx, samples, errs)
	go s.publishLoop(ctx, samples, errs)

	select {
	case <-ctx.Done():
		return nil
	case err := <-errs:
		return err
	}
}

// readLoop reads samples as fast as the source allows; backpressure from
// the bounded channel, not a ticker, paces it against the publisher.
func (s *Service) readLoop(ctx context.Context, samples chan<- domain.Agent, errs chan<- error) {
	defer close(samples)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		sample, err := s.source.Read()
		if err != nil {
			errs <- err
			return
		}

		select {
		case samples <- sample:
		case <-ctx.Done():
			return
		}
	}
}

// publishLoop publishes each sample as it arrives, then waits out the
// configured delay before accepting the next one.
func (s *Service) publishLoop(ctx context.Context, samples <-chan domain.Agent, errs chan<- error) {
	ticker := time.NewTicker(s.cfg.ReadDelay())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case sample, ok := <-samples:
			if !ok {
				return
			}
			payload, err := json.Marshal(sample)
			if err != nil {
				s.logger.Error("failed to encode agent sample", "error", err)
				continue
			}

			token := s.client.Publish(s.cfg.Mqtt.Topic, 0, false, payload)
			token.Wait()
			if err := token.Error(); err != nil {
				errs <- err
				return
			}
			s.logger.Debug("published agent sample")

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *Service) Close() {
	s.client.Disconnect(250)
	_ = s.source.Close()
}
