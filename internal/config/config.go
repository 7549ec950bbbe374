// Package config loads and saves physica's yaml configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/physica/internal/regime"
)

const (
	DefaultAddr    = ":8080"
	DefaultDataDir = ".physica"
)

type Config struct {
	Server     ServerConfig      `yaml:"server"`
	DataDir    string            `yaml:"data_dir"`
	Thresholds regime.Thresholds `yaml:"thresholds"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Server:     ServerConfig{Addr: DefaultAddr},
		DataDir:    DefaultDataDir,
		Thresholds: regime.DefaultThresholds(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
