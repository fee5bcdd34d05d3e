package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInferICPSegment requires a hit on both the subreddit name and the
// company description before attaching a segment.
func TestInferICPSegment(t *testing.T) {
	tests := []struct {
		name        string
		subreddit   string
		description string
		want        string
	}{
		{
			name:        "both sides match",
			subreddit:   "r/PowerPoint",
			description: "AI tool for building presentation decks",
			want:        "presentations",
		},
		{
			name:        "case insensitive",
			subreddit:   "r/POWERPOINT",
			description: "KEYNOTE automation",
			want:        "presentations",
		},
		{
			name:        "subreddit only is not enough",
			subreddit:   "r/PowerPoint",
			description: "CRM for small plumbing businesses",
			want:        "",
		},
		{
			name:        "description only is not enough",
			subreddit:   "r/cats",
			description: "AI tool for building presentation decks",
			want:        "",
		},
		{
			name:        "engineering segment",
			subreddit:   "r/programming",
			description: "code review assistant for software teams",
			want:        "engineering",
		},
		{
			name:        "no match at all",
			subreddit:   "r/cats",
			description: "pet food subscriptions",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferICPSegment(tt.subreddit, tt.description))
		})
	}
}

// TestInferICPSegment_Deterministic returns the same segment on every call
// when multiple segments could match.
func TestInferICPSegment_Deterministic(t *testing.T) {
	// "automation" hits productivity; "slides" hits presentations. Sorted
	// segment order makes "presentations" win every time.
	sub := "r/slides_automation"
	desc := "presentation workflow automation with slides"

	first := InferICPSegment(sub, desc)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, InferICPSegment(sub, desc))
	}
	assert.Equal(t, "presentations", first)
}
