// Package llm defines the content-generation collaborator contract consumed
// by the calendar planner, plus the shared plumbing for parsing and
// validating model output at the boundary.
package llm

import "context"

// ContentGenerator is the interface every text-generation provider
// implements. The planner only ever constructs requests and consumes
// results conforming to the fixed shapes below; wording is entirely the
// provider's business.
type ContentGenerator interface {
	// GeneratePost produces a title and body for one planned post.
	// A structurally invalid result (empty title or body) must surface as
	// a generation error, never as a degenerate success.
	GeneratePost(ctx context.Context, req PostRequest) (*PostResult, error)

	// GenerateComment produces the text for one planned comment.
	GenerateComment(ctx context.Context, req CommentRequest) (*CommentResult, error)

	// ProviderName identifies the backing provider. Diagnostic only.
	ProviderName() string
}
