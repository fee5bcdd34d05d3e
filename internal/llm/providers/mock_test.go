package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
	genai "github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

func postReq(subreddit string) genai.PostRequest {
	return genai.PostRequest{
		Persona:   domain.Persona{Username: "tester", Backstory: "writes tests"},
		Subreddit: subreddit,
	}
}

func commentReq(position genai.CommentPosition) genai.CommentRequest {
	return genai.CommentRequest{
		Persona:  domain.Persona{Username: "tester"},
		Post:     genai.PostContext{Title: "t", Body: "b", AuthorUsername: "author"},
		Position: position,
	}
}

// TestMockGenerator_Placeholders fabricates non-empty results with no
// canned queue.
func TestMockGenerator_Placeholders(t *testing.T) {
	m := NewMockGenerator()
	ctx := context.Background()

	post, err := m.GeneratePost(ctx, postReq("r/golang"))
	require.NoError(t, err)
	assert.NoError(t, post.Validate())
	assert.Contains(t, post.Title, "r/golang")

	comment, err := m.GenerateComment(ctx, commentReq(genai.PositionFirst))
	require.NoError(t, err)
	assert.NoError(t, comment.Validate())
}

// TestMockGenerator_ReplaysAndCycles returns canned results in order and
// wraps around when the queue runs out.
func TestMockGenerator_ReplaysAndCycles(t *testing.T) {
	m := NewMockGenerator().WithPostResults(
		genai.PostResult{Title: "first title", Body: "first body"},
		genai.PostResult{Title: "second title", Body: "second body"},
	)
	ctx := context.Background()

	for i, want := range []string{"first title", "second title", "first title"} {
		got, err := m.GeneratePost(ctx, postReq("r/golang"))
		require.NoError(t, err, "call %d", i)
		assert.Equal(t, want, got.Title, "call %d", i)
	}
}

// TestMockGenerator_RecordsRequests captures every request for later
// inspection.
func TestMockGenerator_RecordsRequests(t *testing.T) {
	m := NewMockGenerator()
	ctx := context.Background()

	_, err := m.GeneratePost(ctx, postReq("r/golang"))
	require.NoError(t, err)
	_, err = m.GenerateComment(ctx, commentReq(genai.PositionLate))
	require.NoError(t, err)

	require.Len(t, m.PostCalls, 1)
	assert.Equal(t, "r/golang", m.PostCalls[0].Subreddit)
	require.Len(t, m.CommentCalls, 1)
	assert.Equal(t, genai.PositionLate, m.CommentCalls[0].Position)
}

// TestMockGenerator_ForcedFailures fail the nth call and only that call.
func TestMockGenerator_ForcedFailures(t *testing.T) {
	m := NewMockGenerator()
	m.FailPostAt = 2
	ctx := context.Background()

	_, err := m.GeneratePost(ctx, postReq("r/a"))
	require.NoError(t, err)

	_, err = m.GeneratePost(ctx, postReq("r/b"))
	require.Error(t, err)
	assert.Equal(t, types.GEN_COMPLETION_FAILED, types.CodeOf(err))

	_, err = m.GeneratePost(ctx, postReq("r/c"))
	assert.NoError(t, err)
}

// TestMockGenerator_CanceledContext surfaces cancellation before doing any
// work.
func TestMockGenerator_CanceledContext(t *testing.T) {
	m := NewMockGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.GeneratePost(ctx, postReq("r/a"))
	require.Error(t, err)
	assert.Equal(t, types.GEN_CANCELED, types.CodeOf(err))
	assert.Empty(t, m.PostCalls, "canceled call must not be recorded")
}
