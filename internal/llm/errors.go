package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

// NewProviderError wraps a provider failure with the GEN_COMPLETION_FAILED
// code, tagging the provider name.
func NewProviderError(provider string, cause error) *types.Error {
	return types.WrapError(types.GEN_COMPLETION_FAILED,
		fmt.Sprintf("provider %s failed", provider), cause)
}

// NewAuthError reports missing or rejected credentials for a provider.
func NewAuthError(provider string) *types.Error {
	return types.NewErrorf(types.GEN_UNAUTHORIZED,
		"provider %s: missing or invalid API key", provider)
}

// TranslateError classifies a raw provider error into the generation error
// taxonomy. Classification is best-effort string matching over the provider
// message; anything unrecognized becomes a completion failure.
func TranslateError(provider string, err error) *types.Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return types.WrapError(types.GEN_CANCELED,
			fmt.Sprintf("provider %s: request canceled", provider), err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "429"):
		return types.WrapError(types.GEN_RATE_LIMITED,
			fmt.Sprintf("provider %s: rate limited", provider), err).WithRetryable()
	case strings.Contains(msg, "unauthorized") || strings.Contains(msg, "401") ||
		strings.Contains(msg, "invalid api key") || strings.Contains(msg, "authentication"):
		return types.WrapError(types.GEN_UNAUTHORIZED,
			fmt.Sprintf("provider %s: unauthorized", provider), err)
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "timeout") || strings.Contains(msg, "network"):
		return types.WrapError(types.GEN_NETWORK_FAILED,
			fmt.Sprintf("provider %s: network failure", provider), err).WithRetryable()
	default:
		return NewProviderError(provider, err)
	}
}
