// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/candidate-matcher/internal/catalog"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. Missing values use defaults or come from CLI flags; the API key can
// also come from the GEMINI_API_KEY environment variable.
type Config struct {
	// Embedding capability
	APIKey         string `json:"api_key,omitempty"`
	EmbeddingModel string `json:"embedding_model,omitempty"`

	// Catalog override; empty means the embedded catalog.
	CatalogPath string `json:"catalog,omitempty"`

	// Policy thresholds. These are policy constants with no derivation on
	// record, so they stay configurable rather than baked into logic.
	DuplicateRatio   float64 `json:"duplicate_ratio,omitempty" validate:"gte=0,lte=1"`
	HeatmapThreshold float64 `json:"heatmap_threshold,omitempty" validate:"gte=-1,lte=1"`
	HeatmapLimit     int     `json:"heatmap_limit,omitempty" validate:"gte=0,lte=50"`

	// EmbedTimeoutSeconds bounds a single embedding call; 0 disables the
	// timeout.
	EmbedTimeoutSeconds int `json:"embed_timeout_seconds,omitempty" validate:"gte=0"`

	// Logging
	JSONLogs bool `json:"json_logs,omitempty"`
	Debug    bool `json:"debug,omitempty"`
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		DuplicateRatio:      0.7,
		HeatmapThreshold:    0.3,
		HeatmapLimit:        5,
		EmbedTimeoutSeconds: 30,
	}
}

// LoadConfig loads configuration from a JSON file, overlaying defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// ResolveAPIKey returns the configured API key, falling back to the
// GEMINI_API_KEY environment variable.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// Catalog returns the catalog selected by the configuration: the external
// file when CatalogPath is set, the embedded default otherwise.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogPath != "" {
		return catalog.Load(c.CatalogPath)
	}
	return catalog.Default()
}
