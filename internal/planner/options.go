package planner

import (
	"log/slog"
	"math/rand"
	"time"
)

// Default comment-position thresholds. These are tuned heuristics, not hard
// invariants: callers may override the numbers, but the qualitative policy
// holds regardless. The first comment is the most likely to mention the
// company, and the original poster's own reply never does.
const (
	DefaultFirstMentionProb = 0.7
	DefaultReplyBranchProb  = 0.6
	DefaultReplyMentionProb = 0.3
	DefaultLateMentionProb  = 0.4
)

// DefaultGenerationInterval is the courtesy pause between consecutive
// external generation calls.
const DefaultGenerationInterval = 2 * time.Second

// Options configures a Planner. Zero-value probability fields are honored
// as written; use DefaultOptions as the starting point and override.
type Options struct {
	// GenerationInterval paces external generation calls. Zero disables
	// pacing. Throughput shaping only; correctness never depends on it.
	GenerationInterval time.Duration

	// FirstMentionProb is the chance the first comment mentions the company.
	FirstMentionProb float64

	// ReplyBranchProb is the chance the second commenter replies to the
	// first comment instead of the post.
	ReplyBranchProb float64

	// ReplyMentionProb is the chance a branched reply mentions the company.
	ReplyMentionProb float64

	// LateMentionProb is the chance a late comment mentions the company.
	LateMentionProb float64

	// Rand is the random source for every stochastic decision. Seed it in
	// tests for deterministic runs. Nil falls back to a time-seeded source.
	Rand *rand.Rand

	// Clock supplies the current time for week anchoring and the completion
	// timestamp. Nil falls back to time.Now.
	Clock func() time.Time

	// Logger receives planning progress. Nil falls back to slog.Default.
	Logger *slog.Logger
}

// DefaultOptions returns Options with the standard thresholds and pacing.
func DefaultOptions() Options {
	return Options{
		GenerationInterval: DefaultGenerationInterval,
		FirstMentionProb:   DefaultFirstMentionProb,
		ReplyBranchProb:    DefaultReplyBranchProb,
		ReplyMentionProb:   DefaultReplyMentionProb,
		LateMentionProb:    DefaultLateMentionProb,
	}
}
