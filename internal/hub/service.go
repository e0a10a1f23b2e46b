package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"iot-system/internal/config"
	"iot-system/internal/domain"
	"iot-system/internal/mqttutil"
	"iot-system/internal/pb"
)

// Service consumes classified records over MQTT, stages them in Redis
// until a full batch has accumulated, and hands completed batches to a
// single dispatcher goroutine for gRPC delivery to the store.
type Service struct {
	cfg    config.HubConfig
	logger *slog.Logger

	mqttClient mqtt.Client
	redis      *redis.Client
	buffer     *buffer
	grpcConn   *grpc.ClientConn
	dispatcher *dispatcher

	jobs chan batchJob
	errs chan error
}

func NewService(cfg config.HubConfig, logger *slog.Logger) (*Service, error) {
	mqttClient, err := mqttutil.Connect(cfg.Mqtt, "hub", logger)
	if err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Address()})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		mqttClient.Disconnect(250)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	grpcConn, err := grpc.NewClient(cfg.StoreAPI.Address(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		mqttClient.Disconnect(250)
		return nil, fmt.Errorf("failed to dial the store api: %w", err)
	}

	jobs := make(chan batchJob, 256)

	return &Service{
		cfg:        cfg,
		logger:     logger,
		mqttClient: mqttClient,
		redis:      redisClient,
		buffer:     newBuffer(redisClient),
		grpcConn:   grpcConn,
		dispatcher: newDispatcher(pb.NewStoreClient(grpcConn), logger, jobs),
		jobs:       jobs,
		errs:       make(chan error, 1),
	}, nil
}

// Run subscribes to the mqtt topic and starts the dispatcher. It blocks
// until ctx is cancelled or either task fails on its own.
func (s *Service) Run(ctx context.Context) error {
	go func() {
		s.errs <- s.dispatcher.run(ctx)
	}()

	token := s.mqttClient.Subscribe(s.cfg.Mqtt.Topic, 0, s.onMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		close(s.jobs)
		return err
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-s.errs:
		return err
	}
}

// onMessage decodes and stages one record. A decode failure or a
// Redis error breaks the trust boundary and the staging-buffer
// invariant, so it is surfaced through errs and stops the hub rather
// than being logged and skipped.
func (s *Service) onMessage(_ mqtt.Client, msg mqtt.Message) {
	payload := msg.Payload()

	var record domain.ProcessedAgentData
	if err := json.Unmarshal(payload, &record); err != nil {
		s.fail(fmt.Errorf("failed to decode the payload: %w", err))
		return
	}

	s.logger.Info("received message", "road_state", record.RoadState)

	ctx := context.Background()
	count, err := s.buffer.len(ctx)
	if err != nil {
		s.fail(fmt.Errorf("failed to get buffer length from redis: %w", err))
		return
	}

	batchSize := int64(s.cfg.BatchSize)
	if count >= batchSize-1 {
		buffered, err := s.buffer.drain(ctx, batchSize-1)
		if err != nil {
			s.fail(fmt.Errorf("failed to drain the buffer from redis: %w", err))
			return
		}
		s.jobs <- batchJob{buffered: buffered, trigger: record}
		return
	}

	if err := s.buffer.push(ctx, payload); err != nil {
		s.fail(fmt.Errorf("failed to push the payload to redis: %w", err))
	}
}

// fail surfaces a fatal error to Run without blocking the mqtt
// callback goroutine; only the first failure matters since the
// process exits once Run returns it.
func (s *Service) fail(err error) {
	s.logger.Error("hub stopping on fatal error", "error", err)
	select {
	case s.errs <- err:
	default:
	}
}

func (s *Service) Close() {
	s.mqttClient.Disconnect(250)
	_ = s.redis.Close()
	_ = s.grpcConn.Close()
	close(s.jobs)
}
