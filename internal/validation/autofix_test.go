package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
)

// TestFixTimestamps_MovesPostsIntoBusinessHours verifies early and late
// posts land at 09:00 while in-window posts are untouched.
func TestFixTimestamps_MovesPostsIntoBusinessHours(t *testing.T) {
	posts := []domain.GeneratedPost{
		post("P1", "r/A", "t1", time.Date(2025, 12, 8, 2, 30, 0, 0, time.UTC)),
		post("P2", "r/B", "t2", time.Date(2025, 12, 8, 23, 30, 0, 0, time.UTC)),
		post("P3", "r/C", "t3", noon),
	}

	FixTimestamps(posts, nil)

	assert.Equal(t, time.Date(2025, 12, 8, 9, 0, 0, 0, time.UTC), posts[0].Timestamp)
	assert.Equal(t, time.Date(2025, 12, 9, 9, 0, 0, 0, time.UTC), posts[1].Timestamp, "23:30 rolls to the next morning")
	assert.Equal(t, noon, posts[2].Timestamp)
}

// TestFixTimestamps_BumpsEarlyComments verifies comments at or before their
// post move to post time plus 15 minutes.
func TestFixTimestamps_BumpsEarlyComments(t *testing.T) {
	posts := []domain.GeneratedPost{post("P1", "r/A", "t", noon)}
	comments := []domain.GeneratedComment{
		comment("C1", "P1", nil, "u1", noon.Add(-time.Hour)),
		comment("C2", "P1", nil, "u2", noon),
		comment("C3", "P1", nil, "u3", noon.Add(30*time.Minute)),
	}

	FixTimestamps(posts, comments)

	assert.Equal(t, noon.Add(15*time.Minute), comments[0].Timestamp)
	assert.Equal(t, noon.Add(15*time.Minute), comments[1].Timestamp, "exactly-at-post counts as early")
	assert.Equal(t, noon.Add(30*time.Minute), comments[2].Timestamp)
}

// TestFixTimestamps_RebasesCommentsAfterPostMove verifies comments compare
// against the adjusted post time, not the original.
func TestFixTimestamps_RebasesCommentsAfterPostMove(t *testing.T) {
	// Post at 03:00 moves to 09:00; its 03:40 comment is now early.
	posts := []domain.GeneratedPost{
		post("P1", "r/A", "t", time.Date(2025, 12, 8, 3, 0, 0, 0, time.UTC)),
	}
	comments := []domain.GeneratedComment{
		comment("C1", "P1", nil, "u1", time.Date(2025, 12, 8, 3, 40, 0, 0, time.UTC)),
	}

	FixTimestamps(posts, comments)

	assert.Equal(t, time.Date(2025, 12, 8, 9, 15, 0, 0, time.UTC), comments[0].Timestamp)
}

// TestFixTimestamps_Idempotent verifies a second pass changes nothing.
func TestFixTimestamps_Idempotent(t *testing.T) {
	posts := []domain.GeneratedPost{
		post("P1", "r/A", "t", time.Date(2025, 12, 8, 23, 45, 0, 0, time.UTC)),
	}
	comments := []domain.GeneratedComment{
		comment("C1", "P1", nil, "u1", time.Date(2025, 12, 8, 23, 50, 0, 0, time.UTC)),
	}

	FixTimestamps(posts, comments)
	wantPost := posts[0].Timestamp
	wantComment := comments[0].Timestamp

	FixTimestamps(posts, comments)
	assert.Equal(t, wantPost, posts[0].Timestamp)
	assert.Equal(t, wantComment, comments[0].Timestamp)
}
