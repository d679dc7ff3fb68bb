package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, TWCAI_CONFIG env, ./twcai.yaml,
//     ~/.config/twcai/config.yaml)
//  3. Environment variable overrides
//  4. Token file reference resolution
//  5. Validation
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := resolveTokenFile(&cfg); err != nil {
		return nil, fmt.Errorf("resolving token file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
//  1. Explicit configPath argument
//  2. TWCAI_CONFIG environment variable
//  3. ./twcai.yaml in the current directory
//  4. ~/.config/twcai/config.yaml
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if envPath := os.Getenv("TWCAI_CONFIG"); envPath != "" {
		return envPath
	}

	candidates := []string{"twcai.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "twcai", "config.yaml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides applies TWCAI_-prefixed environment variables on top
// of the file configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TWCAI_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TWCAI_API_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("TWCAI_AGENT_ID"); v != "" {
		cfg.AgentID = v
	}
	if v := os.Getenv("TWCAI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
}

// resolveTokenFile reads the token from TokenFile when Token itself is
// unset. Surrounding whitespace is trimmed.
func resolveTokenFile(cfg *Config) error {
	if cfg.Token != "" || cfg.TokenFile == "" {
		return nil
	}
	data, err := os.ReadFile(cfg.TokenFile)
	if err != nil {
		return err
	}
	cfg.Token = strings.TrimSpace(string(data))
	return nil
}
