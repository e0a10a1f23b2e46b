// Package config loads per-service configuration the way the rest of the
// pipeline expects it: a base file merged with an environment-specific
// override, then environment variables layered on top.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Server is a host/port pair shared by every network-facing config block.
type Server struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// Address returns the "host:port" form used to dial or listen.
func (s Server) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Mqtt is the broker connection and topic a service publishes or
// subscribes on.
type Mqtt struct {
	Server `mapstructure:",squash"`
	Topic  string `mapstructure:"topic"`
}

// BrokerURL returns the tcp:// URL paho's client expects.
func (m Mqtt) BrokerURL() string {
	return fmt.Sprintf("tcp://%s:%d", m.Host, m.Port)
}

// Environment selects which override file is merged over base.yaml.
type Environment string

const (
	Local      Environment = "local"
	Production Environment = "production"
)

func parseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case Local, Production:
		return Environment(s), nil
	default:
		return "", fmt.Errorf("unknown APP_ENVIRONMENT: %q", s)
	}
}

// Load reads configuration/<service>/base.{yaml,yml,json} merged with
// configuration/<service>/<APP_ENVIRONMENT>.{yaml,yml,json}, then applies
// APP__-prefixed environment variables (double underscore as the nesting
// separator, e.g. APP__SERVER__PORT=8080) over the result, and decodes
// into out. A .env file in the working directory, if present, is loaded
// first so local development doesn't require exported shell variables.
func Load(service string, out interface{}) error {
	_ = godotenv.Load()

	environment, err := parseEnvironment(os.Getenv("APP_ENVIRONMENT"))
	if err != nil {
		return fmt.Errorf("reading APP_ENVIRONMENT: %w", err)
	}

	configDir := fmt.Sprintf("configuration/%s", service)

	v := viper.New()
	v.SetConfigName("base")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading base configuration: %w", err)
	}

	v.SetConfigName(string(environment))
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("reading %s configuration: %w", environment, err)
	}

	// viper joins prefix and key with a single "_", so the prefix carries
	// the second underscore that makes the variable names APP__...
	v.SetEnvPrefix("APP_")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("decoding configuration: %w", err)
	}
	return nil
}
