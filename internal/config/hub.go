package config

// HubConfig is read from configuration/hub/. StoreAPI is the hub's gRPC
// client endpoint into the store; Redis is the staging buffer.
type HubConfig struct {
	StoreAPI  Server `mapstructure:"store_api"`
	Redis     Server `mapstructure:"redis"`
	BatchSize uint   `mapstructure:"batch_size"`
	Mqtt      Mqtt   `mapstructure:"mqtt"`
}

func LoadHubConfig() (HubConfig, error) {
	var cfg HubConfig
	err := Load("hub", &cfg)
	if err == nil && cfg.BatchSize == 0 {
		cfg.BatchSize = 1
	}
	return cfg, err
}
