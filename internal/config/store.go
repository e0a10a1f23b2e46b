package config

import "fmt"

// DatabaseConfig describes the store's Postgres connection.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"dbname"`
}

// DSN builds a libpq-style connection string for gorm's postgres driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.Username, d.Password, d.Name,
	)
}

// StoreConfig is read from configuration/store/. Server is the REST/WS
// HTTP listener; Grpc is the gRPC listener for hub dispatches.
type StoreConfig struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   Server         `mapstructure:"server"`
	Grpc     Server         `mapstructure:"grpc"`
}

func LoadStoreConfig() (StoreConfig, error) {
	var cfg StoreConfig
	err := Load("store", &cfg)
	return cfg, err
}
