package config

// EdgeConfig is read from configuration/edge/. The edge service consumes
// raw samples on Mqtt and republishes classified records on HubMqtt.
type EdgeConfig struct {
	Mqtt    Mqtt `mapstructure:"mqtt"`
	HubMqtt Mqtt `mapstructure:"hub_mqtt"`
}

func LoadEdgeConfig() (EdgeConfig, error) {
	var cfg EdgeConfig
	err := Load("edge", &cfg)
	return cfg, err
}
