package providers

import (
	"github.com/tmc/langchaingo/llms/ollama"

	genai "github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

const defaultOllamaModel = "llama3"

// NewOllamaGenerator builds a content generator backed by a local Ollama
// server. No API key is required.
func NewOllamaGenerator(cfg genai.ProviderConfig) (genai.ContentGenerator, error) {
	model := cfg.Model
	if model == "" {
		model = defaultOllamaModel
	}

	opts := []ollama.Option{
		ollama.WithModel(model),
	}
	if cfg.ServerURL != "" {
		opts = append(opts, ollama.WithServerURL(cfg.ServerURL))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, types.WrapError(types.GEN_PROVIDER_INIT_FAILED,
			"failed to initialize ollama client", err)
	}

	return newChainGenerator("ollama", client), nil
}
