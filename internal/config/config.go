package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kevinflint-cs2/watchtower/internal/harpoon"
)

// Config holds the scanner settings shared by the CLI flags, the optional
// YAML file and HARPOON_* environment variables.
type Config struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	ApprovedPath        string  `yaml:"approved_domains"`
	NewDomainsPath      string  `yaml:"new_domains"`
	OutputPath          string  `yaml:"output"`
	LogLevel            string  `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		SimilarityThreshold: harpoon.DefaultThreshold,
		ApprovedPath:        "data/harpoon/approved_domains.md",
		NewDomainsPath:      "data/harpoon/newly_registered_domains.md",
		OutputPath:          "data/harpoon/candidates.json",
		LogLevel:            "info",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv loads a .env file when one is present and overlays HARPOON_*
// variables onto the config. Unparseable numeric values are an error
// rather than silently ignored.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()

	if v := os.Getenv("HARPOON_SIMILARITY_THRESHOLD"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse HARPOON_SIMILARITY_THRESHOLD: %w", err)
		}
		c.SimilarityThreshold = parsed
	}
	if v := os.Getenv("HARPOON_APPROVED_DOMAINS"); v != "" {
		c.ApprovedPath = v
	}
	if v := os.Getenv("HARPOON_NEW_DOMAINS"); v != "" {
		c.NewDomainsPath = v
	}
	if v := os.Getenv("HARPOON_OUTPUT"); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv("HARPOON_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}
