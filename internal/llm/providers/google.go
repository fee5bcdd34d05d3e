package providers

import (
	"context"
	"os"

	"github.com/tmc/langchaingo/llms/googleai"

	genai "github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

const defaultGoogleModel = "gemini-1.5-pro"

// NewGoogleGenerator builds a content generator backed by Google's Gemini
// models.
func NewGoogleGenerator(ctx context.Context, cfg genai.ProviderConfig) (genai.ContentGenerator, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, genai.NewAuthError("google")
	}

	model := cfg.Model
	if model == "" {
		model = defaultGoogleModel
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, types.WrapError(types.GEN_PROVIDER_INIT_FAILED,
			"failed to initialize google client", err)
	}

	return newChainGenerator("google", client), nil
}
