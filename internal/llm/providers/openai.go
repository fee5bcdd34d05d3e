package providers

import (
	"os"

	"github.com/tmc/langchaingo/llms/openai"

	genai "github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

const defaultOpenAIModel = "gpt-4o"

// NewOpenAIGenerator builds a content generator backed by OpenAI models.
// ServerURL overrides the API base for OpenAI-compatible endpoints.
func NewOpenAIGenerator(cfg genai.ProviderConfig) (genai.ContentGenerator, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, genai.NewAuthError("openai")
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if cfg.ServerURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.ServerURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, types.WrapError(types.GEN_PROVIDER_INIT_FAILED,
			"failed to initialize openai client", err)
	}

	return newChainGenerator("openai", client), nil
}
