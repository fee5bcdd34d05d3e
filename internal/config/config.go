// Package config defines the application configuration and its YAML loader.
package config

import (
	"fmt"
	"time"

	"github.com/jason-ezenwa/reddit-mastermind/internal/llm"
)

// Config is the root configuration for reddit-mastermind.
type Config struct {
	LLM     llm.ProviderConfig `yaml:"llm"`
	Planner PlannerConfig      `yaml:"planner"`
	Server  ServerConfig       `yaml:"server"`
	Logging LoggingConfig      `yaml:"logging"`
}

// PlannerConfig tunes the calendar planner.
type PlannerConfig struct {
	// GenerationInterval is the courtesy pause between consecutive
	// content-generation calls. Zero disables pacing.
	GenerationInterval time.Duration `yaml:"generation_interval"`

	// Comment-position thresholds. Defaults reproduce the standard policy;
	// override with care, the qualitative shape of threads depends on them.
	FirstMentionProb float64 `yaml:"first_mention_prob"`
	ReplyBranchProb  float64 `yaml:"reply_branch_prob"`
	ReplyMentionProb float64 `yaml:"reply_mention_prob"`
	LateMentionProb  float64 `yaml:"late_mention_prob"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if c.Planner.GenerationInterval < 0 {
		return fmt.Errorf("planner: generation interval cannot be negative")
	}
	for name, p := range map[string]float64{
		"first_mention_prob": c.Planner.FirstMentionProb,
		"reply_branch_prob":  c.Planner.ReplyBranchProb,
		"reply_mention_prob": c.Planner.ReplyMentionProb,
		"late_mention_prob":  c.Planner.LateMentionProb,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("planner: %s must be within [0,1], got %v", name, p)
		}
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server: addr is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging: unknown level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging: unknown format %q", c.Logging.Format)
	}
	return nil
}
