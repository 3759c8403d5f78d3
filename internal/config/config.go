// Package config loads patternc's small CLI config file, mirroring the
// teacher's use of gopkg.in/yaml.v3 for structured config/spec files
// (internal/eval_harness.BenchmarkSpec).
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of ~/.patternc.yaml. cmd/patternc reads
// only Format; Color and HistoryFile are decoded but no command reads
// them (the REPL always keeps its history under the OS temp directory).
type Config struct {
	Format      string `yaml:"format"`       // default output format: tree, decider, or ir
	Color       bool   `yaml:"color"`        // colorize CLI/REPL output
	HistoryFile string `yaml:"history_file"` // REPL history file path override
}

// Load reads the config at path, or ~/.patternc.yaml if path is empty.
// A missing file is not an error: Load returns a Config with Color set
// and every other field zero.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(home, ".patternc.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Color: true}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
