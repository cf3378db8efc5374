package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load returns the embedded lawn configuration.
// The hardcoded defaults are used if the embedded YAML does not parse or
// does not validate, so Load always yields a playable config.
func Load() LawnConfig {
	cfg, err := Parse(defaultLawnYAML)
	if err != nil {
		return DefaultLawnConfig()
	}
	return cfg
}

// Parse decodes and validates a lawn configuration document.
// Fields missing from the document keep their default values.
func Parse(data []byte) (LawnConfig, error) {
	cfg := DefaultLawnConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse lawn config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
