package edge

import (
	"context"
	"encoding/json"
	"log/slog"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"iot-system/internal/config"
	"iot-system/internal/domain"
	"iot-system/internal/mqttutil"
)

// Service subscribes to raw agent samples, classifies each one, and
// republishes the classified record for the hub to pick up.
type Service struct {
	cfg        config.EdgeConfig
	logger     *slog.Logger
	classifier *Classifier

	agentClient mqtt.Client
	hubClient   mqtt.Client
}

func NewService(cfg config.EdgeConfig, logger *slog.Logger) (*Service, error) {
	agentClient, err := mqttutil.Connect(cfg.Mqtt, "edge-agent", logger)
	if err != nil {
		return nil, err
	}

	hubClient, err := mqttutil.Connect(cfg.HubMqtt, "edge-hub", logger)
	if err != nil {
		agentClient.Disconnect(250)
		return nil, err
	}

	return &Service{
		cfg:         cfg,
		logger:      logger,
		classifier:  NewClassifier(),
		agentClient: agentClient,
		hubClient:   hubClient,
	}, nil
}

// Run subscribes to the agent topic and blocks until ctx is cancelled or
// the subscription itself fails.
func (s *Service) Run(ctx context.Context) error {
	token := s.agentClient.Subscribe(s.cfg.Mqtt.Topic, 0, s.onAgentMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}

func (s *Service) onAgentMessage(_ mqtt.Client, msg mqtt.Message) {
	var sample domain.Agent
	if err := json.Unmarshal(msg.Payload(), &sample); err != nil {
		s.logger.Error("failed to decode agent sample", "error", err)
		return
	}

	processed := s.classifier.Classify(sample)

	payload, err := json.Marshal(processed)
	if err != nil {
		s.logger.Error("failed to encode processed agent data", "error", err)
		return
	}

	token := s.hubClient.Publish(s.cfg.HubMqtt.Topic, 0, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		s.logger.Error("failed to publish processed agent data to the hub", "error", err)
	}
}

func (s *Service) Close() {
	s.agentClient.Disconnect(250)
	s.hubClient.Disconnect(250)
}
