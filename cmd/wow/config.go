package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk CLI configuration. Environment variables
// override the file; flags override both.
type fileConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	Region       string `yaml:"region"`
	Locale       string `yaml:"locale"`
	LogLevel     string `yaml:"log_level"`
}

// loadConfig reads ~/.config/wow/config.yml (when present) and layers
// WOW_* environment variables on top. A missing file is not an error; a
// malformed one is.
func loadConfig() (fileConfig, error) {
	var cfg fileConfig

	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "wow", "config.yml")
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("WOW_CLIENT_ID"); v != "" {
		cfg.ClientID = v
	}
	if v := os.Getenv("WOW_CLIENT_SECRET"); v != "" {
		cfg.ClientSecret = v
	}
	if v := os.Getenv("WOW_REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv("WOW_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("WOW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
