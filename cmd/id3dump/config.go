package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls how frames are rendered. All fields are optional; the
// zero config file is valid.
type Config struct {
	// ShowUnknown includes frames whose content could not be interpreted.
	ShowUnknown bool `yaml:"show_unknown"`

	// MaxValueLength truncates rendered values longer than this many
	// bytes. Zero disables truncation.
	MaxValueLength int `yaml:"max_value_length"`

	// ShowOffsets prefixes every frame with its byte offset inside the
	// frame data.
	ShowOffsets bool `yaml:"show_offsets"`
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() *Config {
	return &Config{
		ShowUnknown:    true,
		MaxValueLength: 120,
	}
}

// loadConfig reads a YAML config file, or returns defaults for an empty
// path. Unknown keys are rejected so typos surface instead of silently
// doing nothing.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
