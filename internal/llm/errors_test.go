package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

// TestTranslateError_Classification maps raw provider messages onto the
// generation error taxonomy.
func TestTranslateError_Classification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  types.ErrorCode
		retryable bool
	}{
		{"rate limit text", errors.New("rate limit exceeded"), types.GEN_RATE_LIMITED, true},
		{"http 429", errors.New("unexpected status 429"), types.GEN_RATE_LIMITED, true},
		{"unauthorized", errors.New("401 unauthorized"), types.GEN_UNAUTHORIZED, false},
		{"bad key", errors.New("invalid api key provided"), types.GEN_UNAUTHORIZED, false},
		{"connection refused", errors.New("dial tcp: connection refused"), types.GEN_NETWORK_FAILED, true},
		{"timeout", errors.New("request timeout"), types.GEN_NETWORK_FAILED, true},
		{"unknown", errors.New("model melted"), types.GEN_COMPLETION_FAILED, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateError("anthropic", tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.retryable, got.Retryable)
			assert.ErrorIs(t, got, tt.err, "cause must stay unwrappable")
		})
	}
}

// TestTranslateError_ContextCancellation wins over message matching.
func TestTranslateError_ContextCancellation(t *testing.T) {
	got := TranslateError("openai", context.Canceled)
	require.NotNil(t, got)
	assert.Equal(t, types.GEN_CANCELED, got.Code)

	got = TranslateError("openai", context.DeadlineExceeded)
	require.NotNil(t, got)
	assert.Equal(t, types.GEN_CANCELED, got.Code)
}

// TestTranslateError_Nil passes nil through.
func TestTranslateError_Nil(t *testing.T) {
	assert.Nil(t, TranslateError("mock", nil))
}
