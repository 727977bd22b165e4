// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable that points at an optional
// configuration file when no --config flag is given.
const EnvConfigFile = "MOVEDEMO_CONFIG_FILE"

// Trace output formats accepted by Config.Trace.Format.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Allocator backends accepted by Config.Allocator.
const (
	AllocatorHeap   = "heap"
	AllocatorPooled = "pooled"
	AllocatorManual = "manual"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds the demonstration settings.
//
// The configuration can be loaded from a JSON or YAML file given explicitly
// or via the MOVEDEMO_CONFIG_FILE environment variable, with defaults applied
// for any missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Trace: settings for the demonstration trace output
	Trace struct {
		// Format: trace output format ("text", "json", or "table")
		Format string `json:"format" yaml:"format"`
		// Payload: text placed into the demonstration buffers
		Payload string `json:"payload" yaml:"payload"`
	} `json:"trace" yaml:"trace"`

	// Allocator: allocation backend ("heap", "pooled", or "manual")
	Allocator string `json:"allocator" yaml:"allocator"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Trace.Format = FormatText
	cfg.Trace.Payload = "buffer1"
	cfg.Allocator = AllocatorHeap
	return cfg
}

// detectConfigFormat determines the configuration file format based on file
// extension, matching case-insensitively. Unknown extensions are treated as
// JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the detected format.
func unmarshalConfig(data []byte, format configFormat, cfg *Config) error {
	switch format {
	case configFormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

// Load reads the configuration from path. An empty path falls back to the
// MOVEDEMO_CONFIG_FILE environment variable; if that is also unset, defaults
// are returned. Missing values are filled with defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := unmarshalConfig(data, detectConfigFormat(path), cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills in any values the file left empty.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Trace.Format == "" {
		cfg.Trace.Format = def.Trace.Format
	}
	if cfg.Trace.Payload == "" {
		cfg.Trace.Payload = def.Trace.Payload
	}
	if cfg.Allocator == "" {
		cfg.Allocator = def.Allocator
	}
}
