package providers

import (
	"context"
	"fmt"
	"sync"

	genai "github.com/jason-ezenwa/reddit-mastermind/internal/llm"
)

// MockGenerator implements ContentGenerator for tests and dry runs. It
// records every request and replays canned results, cycling when the queue
// is shorter than the run. With no canned results configured it fabricates
// plausible placeholders, so `--provider mock` works out of the box.
type MockGenerator struct {
	mu sync.Mutex

	postResults    []genai.PostResult
	commentResults []genai.CommentResult
	postIndex      int
	commentIndex   int

	// FailPostAt / FailCommentAt force a generation error on the nth call
	// (1-based). Zero disables.
	FailPostAt    int
	FailCommentAt int

	PostCalls    []genai.PostRequest
	CommentCalls []genai.CommentRequest
}

// NewMockGenerator creates a mock with no canned results.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// WithPostResults queues canned post results.
func (m *MockGenerator) WithPostResults(results ...genai.PostResult) *MockGenerator {
	m.postResults = append(m.postResults, results...)
	return m
}

// WithCommentResults queues canned comment results.
func (m *MockGenerator) WithCommentResults(results ...genai.CommentResult) *MockGenerator {
	m.commentResults = append(m.commentResults, results...)
	return m
}

// ProviderName returns "mock".
func (m *MockGenerator) ProviderName() string {
	return "mock"
}

// GeneratePost records the request and returns the next canned result.
func (m *MockGenerator) GeneratePost(ctx context.Context, req genai.PostRequest) (*genai.PostResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, genai.TranslateError("mock", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.PostCalls = append(m.PostCalls, req)
	m.postIndex++

	if m.FailPostAt > 0 && m.postIndex == m.FailPostAt {
		return nil, genai.NewProviderError("mock", fmt.Errorf("forced post failure at call %d", m.postIndex))
	}

	if len(m.postResults) == 0 {
		return &genai.PostResult{
			Title: fmt.Sprintf("Placeholder post %d for %s", m.postIndex, req.Subreddit),
			Body:  fmt.Sprintf("Placeholder body written as %s.", req.Persona.Username),
		}, nil
	}

	result := m.postResults[(m.postIndex-1)%len(m.postResults)]
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateComment records the request and returns the next canned result.
func (m *MockGenerator) GenerateComment(ctx context.Context, req genai.CommentRequest) (*genai.CommentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, genai.TranslateError("mock", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.CommentCalls = append(m.CommentCalls, req)
	m.commentIndex++

	if m.FailCommentAt > 0 && m.commentIndex == m.FailCommentAt {
		return nil, genai.NewProviderError("mock", fmt.Errorf("forced comment failure at call %d", m.commentIndex))
	}

	if len(m.commentResults) == 0 {
		return &genai.CommentResult{
			Text: fmt.Sprintf("Placeholder %s comment %d by %s.", req.Position, m.commentIndex, req.Persona.Username),
		}, nil
	}

	result := m.commentResults[(m.commentIndex-1)%len(m.commentResults)]
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}
