package llm

import (
	"encoding/json"
	"fmt"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

// maxTitleLength caps post titles, matching Reddit's own limit.
const maxTitleLength = 300

// CommentPosition classifies where a comment sits in its thread.
type CommentPosition string

const (
	// PositionFirst is the first comment under a post.
	PositionFirst CommentPosition = "first"
	// PositionReply is a reply to an earlier comment.
	PositionReply CommentPosition = "reply"
	// PositionLate is a top-level comment arriving hours after the post.
	PositionLate CommentPosition = "late"
)

// String returns the string representation of the position.
func (p CommentPosition) String() string {
	return string(p)
}

// IsValid checks if the position is a known value.
func (p CommentPosition) IsValid() bool {
	switch p {
	case PositionFirst, PositionReply, PositionLate:
		return true
	default:
		return false
	}
}

// MarshalJSON implements json.Marshaler.
func (p CommentPosition) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *CommentPosition) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	pos := CommentPosition(s)
	if !pos.IsValid() {
		return fmt.Errorf("invalid comment position: %s", s)
	}
	*p = pos
	return nil
}

// PostRequest carries everything a provider needs to write one post.
type PostRequest struct {
	Persona    domain.Persona        `json:"persona"`
	Subreddit  string                `json:"subreddit"`
	Keywords   []domain.Keyword      `json:"keywords"`
	Company    domain.CompanyProfile `json:"company"`
	ICPSegment string                `json:"icp_segment,omitempty"`
}

// PostResult is the strict result contract for post generation.
type PostResult struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Validate rejects structurally invalid results at the provider boundary.
func (r *PostResult) Validate() error {
	if r == nil {
		return types.NewError(types.GEN_INVALID_RESULT, "post result is nil")
	}
	if r.Title == "" {
		return types.NewError(types.GEN_INVALID_RESULT, "post result has empty title")
	}
	if len(r.Title) > maxTitleLength {
		return types.NewErrorf(types.GEN_INVALID_RESULT,
			"post title exceeds %d characters (%d)", maxTitleLength, len(r.Title))
	}
	if r.Body == "" {
		return types.NewError(types.GEN_INVALID_RESULT, "post result has empty body")
	}
	return nil
}

// PostContext is the owning post's content, passed along with every comment
// request so the provider can write something on-topic.
type PostContext struct {
	Title          string `json:"title"`
	Body           string `json:"body"`
	AuthorUsername string `json:"author_username"`
}

// ParentContext is the parent comment's content for reply requests.
type ParentContext struct {
	Text     string `json:"text"`
	Username string `json:"username"`
}

// CommentRequest carries everything a provider needs to write one comment.
// Parent is nil for top-level comments.
type CommentRequest struct {
	Persona        domain.Persona        `json:"persona"`
	Post           PostContext           `json:"post"`
	Parent         *ParentContext        `json:"parent_comment,omitempty"`
	Company        domain.CompanyProfile `json:"company"`
	Position       CommentPosition       `json:"comment_position"`
	MentionCompany bool                  `json:"should_mention_product"`
}

// CommentResult is the strict result contract for comment generation.
type CommentResult struct {
	Text string `json:"text"`
}

// Validate rejects structurally invalid results at the provider boundary.
func (r *CommentResult) Validate() error {
	if r == nil {
		return types.NewError(types.GEN_INVALID_RESULT, "comment result is nil")
	}
	if r.Text == "" {
		return types.NewError(types.GEN_INVALID_RESULT, "comment result has empty text")
	}
	return nil
}
