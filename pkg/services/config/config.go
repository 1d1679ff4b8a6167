// Package config loads the analyzer configuration file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DataFile    string `mapstructure:"data_file"`
	Granularity string `mapstructure:"granularity"`
}

// Load reads and validates the config file at path. Granularity
// defaults to monthly when unset.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("granularity", "monthly")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DataFile == "" {
		return nil, fmt.Errorf("data_file must be set in %s", path)
	}
	return &cfg, nil
}
