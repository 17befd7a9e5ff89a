// Package config provides configuration loading and structs for the Tantei server.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Server   ServerConfig   `yaml:"server"`
	Wikidata WikidataConfig `yaml:"wikidata"`
	Resolve  ResolveConfig  `yaml:"resolve"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"min=0,max=65535"`
}

// WikidataConfig holds the external endpoints and request etiquette settings.
type WikidataConfig struct {
	QueryEndpoint     string  `yaml:"query_endpoint" validate:"required,url"`
	SearchEndpoint    string  `yaml:"search_endpoint" validate:"required,url"`
	WikiSite          string  `yaml:"wiki_site" validate:"required,url"`
	Language          string  `yaml:"language" validate:"required"`
	UserAgent         string  `yaml:"user_agent"`
	TimeoutSeconds    int     `yaml:"timeout_seconds" validate:"min=0"`
	RequestsPerSecond float64 `yaml:"requests_per_second" validate:"min=0"`
}

// Timeout returns the per-request timeout as a duration.
func (w *WikidataConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// ResolveConfig holds aggregation settings.
type ResolveConfig struct {
	SearchLimit int `yaml:"search_limit" validate:"min=0,max=50"`
}

// Load reads and parses the config file at path, applies defaults, and
// validates the result. Returns an error if the file cannot be read or
// parsed, or if a field fails validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
