package config

import (
	"github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/planner"
)

// DefaultConfig returns a Config with sensible default values. The mock
// provider is the default so a fresh checkout runs without credentials.
func DefaultConfig() *Config {
	return &Config{
		LLM: llm.ProviderConfig{
			Type: llm.ProviderMock,
		},
		Planner: PlannerConfig{
			GenerationInterval: planner.DefaultGenerationInterval,
			FirstMentionProb:   planner.DefaultFirstMentionProb,
			ReplyBranchProb:    planner.DefaultReplyBranchProb,
			ReplyMentionProb:   planner.DefaultReplyMentionProb,
			LateMentionProb:    planner.DefaultLateMentionProb,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// PlannerOptions converts the planner section into planner.Options.
func (c *Config) PlannerOptions() planner.Options {
	return planner.Options{
		GenerationInterval: c.Planner.GenerationInterval,
		FirstMentionProb:   c.Planner.FirstMentionProb,
		ReplyBranchProb:    c.Planner.ReplyBranchProb,
		ReplyMentionProb:   c.Planner.ReplyMentionProb,
		LateMentionProb:    c.Planner.LateMentionProb,
	}
}
