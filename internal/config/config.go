// Package config loads the clientes daemon settings.
//
// Values are layered: built-in defaults, then an optional YAML file named by
// CLIENTES_CONFIG, then individual environment variables.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the daemon settings.
type Config struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`

	// SeedFile, when set, is loaded into the store at startup.
	SeedFile string `yaml:"seedFile"`

	// EnableTLS serves HTTPS with a freshly generated self-signed certificate.
	EnableTLS bool `yaml:"enableTLS"`

	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string `yaml:"ginMode"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Host:    "0.0.0.0",
		Port:    "8000",
		GinMode: "release",
	}
}

// Load builds the configuration from defaults, the optional file and the environment.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CLIENTES_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CLIENTES_HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("CLIENTES_PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("CLIENTES_SEED_FILE"); v != "" {
		c.SeedFile = v
	}
	if v := os.Getenv("CLIENTES_GIN_MODE"); v != "" {
		c.GinMode = v
	}
	if v := os.Getenv("CLIENTES_ENABLE_TLS"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CLIENTES_ENABLE_TLS: %w", err)
		}
		c.EnableTLS = enabled
	}
	return nil
}
