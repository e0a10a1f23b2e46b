// Package mqttutil provides the shared broker-connection helper used by
// the agent, edge and hub services.
package mqttutil

import (
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"iot-system/internal/config"
)

// Connect dials the broker described by cfg and blocks until the
// connection succeeds or the token reports a failure. clientID should be
// unique per process so the broker does not evict a previous session.
func Connect(cfg config.Mqtt, clientID string, logger *slog.Logger) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL()).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	opts.OnConnect = func(mqtt.Client) {
		logger.Info("connected to the broker", "host", cfg.Host, "port", cfg.Port)
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Error("lost connection to the broker", "host", cfg.Host, "port", cfg.Port, "error", err)
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("timed out connecting to broker %s:%d", cfg.Host, cfg.Port)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to broker (%s:%d): %w", cfg.Host, cfg.Port, err)
	}
	return client, nil
}
