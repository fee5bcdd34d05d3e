package providers

import (
	"os"

	"github.com/tmc/langchaingo/llms/anthropic"

	genai "github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

const defaultAnthropicModel = "claude-3-5-sonnet-20241022"

// NewAnthropicGenerator builds a content generator backed by Anthropic's
// Claude models.
func NewAnthropicGenerator(cfg genai.ProviderConfig) (genai.ContentGenerator, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, genai.NewAuthError("anthropic")
	}

	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}

	client, err := anthropic.New(
		anthropic.WithToken(apiKey),
		anthropic.WithModel(model),
	)
	if err != nil {
		return nil, types.WrapError(types.GEN_PROVIDER_INIT_FAILED,
			"failed to initialize anthropic client", err)
	}

	return newChainGenerator("anthropic", client), nil
}
