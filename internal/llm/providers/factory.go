package providers

import (
	"context"

	genai "github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

// NewGenerator creates a content generator from the configuration.
func NewGenerator(ctx context.Context, cfg genai.ProviderConfig) (genai.ContentGenerator, error) {
	switch cfg.Type {
	case genai.ProviderAnthropic:
		return NewAnthropicGenerator(cfg)

	case genai.ProviderOpenAI:
		return NewOpenAIGenerator(cfg)

	case genai.ProviderGoogle:
		return NewGoogleGenerator(ctx, cfg)

	case genai.ProviderOllama:
		return NewOllamaGenerator(cfg)

	case genai.ProviderMock:
		return NewMockGenerator(), nil

	default:
		return nil, types.NewErrorf(types.GEN_PROVIDER_NOT_FOUND,
			"unknown provider type: %s", cfg.Type)
	}
}
