package transport

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk session configuration.
type FileConfig struct {
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	RetryMax       int    `yaml:"retry_max"`
}

// LoadConfig reads and validates a session config from a YAML file.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("transport: reading config %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("transport: parsing config %s: %w", path, err)
	}
	cfg := Config{
		BaseURL:  fc.BaseURL,
		Token:    fc.Token,
		Timeout:  time.Duration(fc.TimeoutSeconds) * time.Second,
		RetryMax: fc.RetryMax,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("transport: invalid config %s: %w", path, err)
	}
	return cfg, nil
}
