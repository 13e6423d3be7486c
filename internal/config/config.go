// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Debug   bool `yaml:"debug"`
		NoColor bool `yaml:"no_color"`
		Quiet   bool `yaml:"quiet"`
	} `yaml:"defaults"`

	// Pattern settings. Additional phrases are appended to the built-in
	// list at startup; the resulting set is immutable for the run.
	Patterns struct {
		Additional []string `yaml:"additional"`
	} `yaml:"patterns"`

	// Output settings
	Output struct {
		// Directory receives the consolidated exports. Per-file exports
		// always land next to their input file.
		Directory string `yaml:"directory"`
	} `yaml:"output"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a YAML file. An empty path returns
// the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadConfigOrDefault loads configuration from a YAML file, falling back
// to defaults if the file is missing or malformed.
func LoadConfigOrDefault(path string) *Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return DefaultConfig()
	}
	return cfg
}
