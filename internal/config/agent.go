package config

import "time"

// AgentConfig is read from configuration/agent/.
type AgentConfig struct {
	Mqtt  Mqtt    `mapstructure:"mqtt"`
	Delay float64 `mapstructure:"delay"`
}

// ReadDelay is the fixed period between successive replayed samples.
func (c AgentConfig) ReadDelay() time.Duration {
	return time.Duration(c.Delay * float64(time.Second))
}

func LoadAgentConfig() (AgentConfig, error) {
	var cfg AgentConfig
	err := Load("agent", &cfg)
	return cfg, err
}
