// Package config loads rfconn settings from rfconn.yaml and RFCONN_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/rfconn/pkg/rfconn"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// RedfishConfig holds the connection retry settings.
// The retry interval is in seconds and may be fractional.
type RedfishConfig struct {
	ConnectionAttempts      int     `yaml:"connection_attempts" envconfig:"CONNECTION_ATTEMPTS"`
	ConnectionRetryInterval float64 `yaml:"connection_retry_interval" envconfig:"CONNECTION_RETRY_INTERVAL"`
}

type LoggingConfig struct {
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
}

type Config struct {
	Redfish RedfishConfig `yaml:"redfish"`
	Logging LoggingConfig `yaml:"logging"`
}

const (
	ConfigFileName = "rfconn.yaml"

	// EnvPrefix prefixes every environment override, e.g. RFCONN_CONNECTION_ATTEMPTS.
	EnvPrefix = "rfconn"
)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Redfish: RedfishConfig{
			ConnectionAttempts:      rfconn.DefaultConnectionAttempts,
			ConnectionRetryInterval: rfconn.DefaultConnectionRetryInterval.Seconds(),
		},
		Logging: LoggingConfig{
			Format: "console",
			Level:  "info",
		},
	}
}

// Load reads rfconn.yaml from sourcePath on top of the defaults.
func Load(sourcePath string) (*Config, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w: %v", configPath, rfconn.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Resolve builds the effective configuration: defaults, then rfconn.yaml from
// sourcePath if present, then environment overrides. The result is validated.
func Resolve(sourcePath string) (*Config, error) {
	cfg, err := Load(sourcePath)
	if errors.Is(err, ErrConfigNotFound) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv overrides config values with RFCONN_* environment variables.
// Variables that are not set leave the current values untouched.
func (c *Config) LoadFromEnv() error {
	if err := envconfig.Process(EnvPrefix, &c.Redfish); err != nil {
		return fmt.Errorf("failed to process environment variables: %w: %v", rfconn.ErrInvalidConfig, err)
	}
	if err := envconfig.Process(EnvPrefix, &c.Logging); err != nil {
		return fmt.Errorf("failed to process environment variables: %w: %v", rfconn.ErrInvalidConfig, err)
	}
	return nil
}

// Settings converts the Redfish section to rfconn.Settings.
func (c *Config) Settings() rfconn.Settings {
	return rfconn.Settings{
		ConnectionAttempts:      c.Redfish.ConnectionAttempts,
		ConnectionRetryInterval: time.Duration(c.Redfish.ConnectionRetryInterval * float64(time.Second)),
	}
}

// Validate checks the configuration attribute to ensure they are semantically correct.
func (c *Config) Validate() error {
	return c.Settings().Validate()
}
