package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// --- CONFIGURATION ---

const defaultConfigPath = "statusicon.config.json"

// ResourceConfig defines a single resource shown on the board.
type ResourceConfig struct {
	Name   string `json:"name" yaml:"name"`
	Kind   string `json:"kind" yaml:"kind"`
	Status string `json:"status" yaml:"status"`
	Spin   bool   `json:"spin" yaml:"spin"`
	TestID string `json:"testId" yaml:"testId"`
}

// BoardConfig defines the top-level structure of the config file.
type BoardConfig struct {
	Title     string           `json:"title" yaml:"title"`
	Resources []ResourceConfig `json:"resources" yaml:"resources"`
}

// --- HELPER FUNCTIONS ---

// loadBoardConfig reads a board config, decoding YAML or JSON by extension.
func loadBoardConfig(path string) (BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BoardConfig{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return parseBoardConfig(path, data)
}

func parseBoardConfig(path string, data []byte) (BoardConfig, error) {
	var cfg BoardConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err := yaml.Unmarshal(data, &cfg)
		if err != nil {
			return BoardConfig{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json", "":
		err := json.Unmarshal(data, &cfg)
		if err != nil {
			return BoardConfig{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return BoardConfig{}, fmt.Errorf("unknown config format: %s", filepath.Ext(path))
	}

	for i, r := range cfg.Resources {
		if r.Name == "" {
			return BoardConfig{}, fmt.Errorf("resource %d: missing name", i)
		}
	}
	if cfg.Title == "" {
		cfg.Title = "Status Board"
	}
	return cfg, nil
}
