// Package models defines data structures for configuration and reporting.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLanguage = "english"
	DefaultFormat   = "json"

	// EnvPunktData names the tokenizer resource directory when neither the
	// config file nor --punkt-data sets it.
	EnvPunktData = "PUNKT_DATA"
	EnvHistoryDB = "HASHTAGS_DB"
)

// Config holds runtime configuration for a counting run.
// Values come from an optional YAML file, then env vars, then CLI flags.
type Config struct {
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	StopWords StopWordsConfig `yaml:"stop_words"`
	Sources   SourcesConfig   `yaml:"sources"`
	Output    OutputConfig    `yaml:"output"`
	History   HistoryConfig   `yaml:"history"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type TokenizerConfig struct {
	DataPath string `yaml:"data_path"`
	Language string `yaml:"language"`
}

type StopWordsConfig struct {
	DisableDefaults bool     `yaml:"disable_defaults"`
	File            string   `yaml:"file"`
	Extra           []string `yaml:"extra"`
}

type SourcesConfig struct {
	IncludeHTML    bool `yaml:"include_html"`
	DetectLanguage bool `yaml:"detect_language"`
}

type OutputConfig struct {
	Format  string `yaml:"format"` // json or yaml
	Top     int    `yaml:"top"`
	Summary string `yaml:"summary"`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with every optional feature off.
func DefaultConfig() *Config {
	return &Config{
		Tokenizer: TokenizerConfig{Language: DefaultLanguage},
		Output:    OutputConfig{Format: DefaultFormat},
		Logging:   LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML config file over the defaults and applies
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)

	if cfg.Tokenizer.Language == "" {
		cfg.Tokenizer.Language = DefaultLanguage
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPunktData); v != "" && cfg.Tokenizer.DataPath == "" {
		cfg.Tokenizer.DataPath = v
	}
	if v := os.Getenv(EnvHistoryDB); v != "" && cfg.History.Path == "" {
		cfg.History.Path = v
	}
}

// Validate checks values that would otherwise fail late in a run.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q (want json or yaml)", c.Output.Format)
	}
	if c.Output.Top < 0 {
		return fmt.Errorf("invalid top value %d", c.Output.Top)
	}
	return nil
}
