package planner

import (
	"time"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
	"github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

// PostPlan is the planner's intermediate record for one post slot. Created
// once during the planning step and never mutated afterwards; the timestamp
// auto-fix operates on the generated post, not the plan.
type PostPlan struct {
	Index      int
	Subreddit  string
	Author     domain.Persona
	Keywords   []domain.Keyword
	Timestamp  time.Time
	ICPSegment string
}

// CommentPlan is the planner's intermediate record for one comment slot,
// consumed immediately when the comment is generated. ParentID is nil for
// top-level comments. TimingHint is a human-readable label carrying intent
// only; the actual timestamp comes from the schedule model.
type CommentPlan struct {
	Position       llm.CommentPosition
	Author         domain.Persona
	ParentID       *types.CommentID
	MentionCompany bool
	TimingHint     string
}
