package validation

import (
	"time"

	"github.com/samber/lo"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
	"github.com/jason-ezenwa/reddit-mastermind/internal/schedule"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

// earlyCommentBump is where a comment that precedes its post gets moved to.
const earlyCommentBump = 15 * time.Minute

// FixTimestamps is the auto-fix pass that runs once before validation:
// every post timestamp is adjusted into business hours, and any comment
// timestamped before its post is forced to post time plus 15 minutes.
//
// Reply-before-parent violations are left alone; they remain detectable
// errors in the validation pass.
func FixTimestamps(posts []domain.GeneratedPost, comments []domain.GeneratedComment) {
	for i := range posts {
		posts[i].Timestamp = schedule.AdjustToBusinessHours(posts[i].Timestamp)
	}

	postTimes := lo.SliceToMap(posts, func(p domain.GeneratedPost) (types.PostID, time.Time) {
		return p.ID, p.Timestamp
	})

	for i := range comments {
		postTime, ok := postTimes[comments[i].PostID]
		if !ok {
			continue
		}
		if !comments[i].Timestamp.After(postTime) {
			comments[i].Timestamp = postTime.Add(earlyCommentBump)
		}
	}
}
