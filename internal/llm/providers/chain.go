// Package providers implements the content-generation contract on top of
// langchaingo model clients, plus a recording mock for tests.
package providers

import (
	"context"
	"encoding/json"

	"github.com/tmc/langchaingo/llms"

	genai "github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

// chainGenerator adapts any langchaingo model to the ContentGenerator
// contract. Providers differ only in how the underlying model is built.
type chainGenerator struct {
	name  string
	model llms.Model
}

func newChainGenerator(name string, model llms.Model) *chainGenerator {
	return &chainGenerator{name: name, model: model}
}

// ProviderName returns the backing provider's name.
func (g *chainGenerator) ProviderName() string {
	return g.name
}

// GeneratePost asks the model for a title and body, enforcing the strict
// result contract on whatever comes back.
func (g *chainGenerator) GeneratePost(ctx context.Context, req genai.PostRequest) (*genai.PostResult, error) {
	prompt := buildPostPrompt(req)

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(0.9),
		llms.WithMaxTokens(1024),
	)
	if err != nil {
		return nil, genai.TranslateError(g.name, err)
	}

	jsonStr, err := genai.ExtractJSON(raw)
	if err != nil {
		return nil, types.WrapError(types.GEN_INVALID_RESULT,
			"post response is not valid JSON", err)
	}

	var result genai.PostResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, types.WrapError(types.GEN_INVALID_RESULT,
			"post response does not match the expected shape", err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateComment asks the model for comment text under the same contract.
func (g *chainGenerator) GenerateComment(ctx context.Context, req genai.CommentRequest) (*genai.CommentResult, error) {
	prompt := buildCommentPrompt(req)

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(0.9),
		llms.WithMaxTokens(512),
	)
	if err != nil {
		return nil, genai.TranslateError(g.name, err)
	}

	jsonStr, err := genai.ExtractJSON(raw)
	if err != nil {
		return nil, types.WrapError(types.GEN_INVALID_RESULT,
			"comment response is not valid JSON", err)
	}

	var result genai.CommentResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, types.WrapError(types.GEN_INVALID_RESULT,
			"comment response does not match the expected shape", err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}
