package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	UpstreamURL     string        `mapstructure:"upstream_url"`
	UpstreamToken   string        `mapstructure:"upstream_token"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoadServerConfig loads the web server configuration from the given file.
func LoadServerConfig(path string) (*ServerConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("addr", ":8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ServerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if config.UpstreamURL == "" {
		return nil, fmt.Errorf("upstream_url is required in %s", path)
	}

	return &config, nil
}
