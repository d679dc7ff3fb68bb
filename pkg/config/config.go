// Package config provides layered configuration for programs embedding
// the twcai client.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (TWCAI_ prefix)
//  4. File reference resolution (token_file)
//  5. Validation
package config

import (
	"time"

	"github.com/timeweb-cloud/twcai-go/pkg/twcai"
)

// Config holds everything a program needs to talk to an agent.
type Config struct {
	BaseURL   string        `yaml:"base_url"`   // default: production address
	Token     string        `yaml:"token"`      // required (or token_file)
	TokenFile string        `yaml:"token_file"` // file variant for token
	AgentID   string        `yaml:"agent_id"`   // agent access identifier
	Timeout   time.Duration `yaml:"timeout"`    // default: 120s
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		BaseURL: twcai.DefaultBaseURL,
		Timeout: twcai.DefaultTimeout,
	}
}

// Client builds a twcai client from the configuration. Config-derived
// options come first, so explicit opts take precedence.
func (c *Config) Client(opts ...twcai.Option) (*twcai.Client, error) {
	base := []twcai.Option{
		twcai.WithBaseURL(c.BaseURL),
		twcai.WithTimeout(c.Timeout),
	}
	return twcai.New(c.Token, append(base, opts...)...)
}
