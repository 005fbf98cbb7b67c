// Package models defines data structures for configuration and the chat corpus.
package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile        = "chatfreq.yaml"
	DefaultInput             = "chats.json"
	DefaultGlobalOutput      = "global_common_words_threshold.txt"
	DefaultPerCategoryOutput = "per_category_word_frequency_excluding_globals.txt"
	DefaultAssignOutput      = "chats_updated.json"

	// DefaultThreshold is the minimum number of categories a word must
	// appear in to count as a shared word.
	DefaultThreshold = 6
	DefaultTopN      = 50
)

// Config holds runtime configuration for both report stages.
// Values come from an optional YAML file and may be overridden by CLI flags.
type Config struct {
	Input             string `yaml:"input"`
	GlobalOutput      string `yaml:"global_output"`
	PerCategoryOutput string `yaml:"per_category_output"`
	AssignOutput      string `yaml:"assign_output"`
	Threshold         int    `yaml:"threshold"`
	TopN              int    `yaml:"top_n"`
}

// DefaultConfig returns the built-in file names and limits.
func DefaultConfig() Config {
	return Config{
		Input:             DefaultInput,
		GlobalOutput:      DefaultGlobalOutput,
		PerCategoryOutput: DefaultPerCategoryOutput,
		AssignOutput:      DefaultAssignOutput,
		Threshold:         DefaultThreshold,
		TopN:              DefaultTopN,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that file names are set and limits are positive.
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("input must not be empty")
	}
	if c.GlobalOutput == "" || c.PerCategoryOutput == "" || c.AssignOutput == "" {
		return errors.New("output file names must not be empty")
	}
	if c.Threshold < 1 {
		return fmt.Errorf("threshold must be at least 1, got %d", c.Threshold)
	}
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1, got %d", c.TopN)
	}
	return nil
}
