// Package rotation holds the stateful selection strategies that spread
// subreddits, keywords and personas evenly across one planning run.
//
// Rotators are constructed fresh per run and are not safe for concurrent
// use; the planner drives them from a single goroutine.
package rotation

import (
	"github.com/samber/lo"
)

// SubredditRotator tracks per-subreddit usage for the current run and picks
// the next subreddit avoiding repeats.
type SubredditRotator struct {
	counts   map[string]int
	lastUsed map[string]int
}

// NewSubredditRotator returns a rotator with no usage recorded.
func NewSubredditRotator() *SubredditRotator {
	return &SubredditRotator{
		counts:   make(map[string]int),
		lastUsed: make(map[string]int),
	}
}

// Select picks the subreddit for post postIndex. Untouched subreddits are
// preferred, chosen round-robin among themselves; once every subreddit has a
// post (only possible when the week has more posts than subreddits) it falls
// back to the least-recently-used one. Callers relying on the
// one-post-per-subreddit rule must supply at least as many subreddits as
// posts or expect an overposting validation failure.
func (r *SubredditRotator) Select(subreddits []string, postIndex int) string {
	untouched := lo.Filter(subreddits, func(s string, _ int) bool {
		return r.counts[s] == 0
	})

	var chosen string
	if len(untouched) > 0 {
		chosen = untouched[postIndex%len(untouched)]
	} else {
		chosen = lo.MinBy(subreddits, func(a, b string) bool {
			return r.lastUsed[a] < r.lastUsed[b]
		})
	}

	r.counts[chosen]++
	r.lastUsed[chosen] = postIndex
	return chosen
}

// IsOverposted reports whether the subreddit received more than one post
// this run.
func (r *SubredditRotator) IsOverposted(subreddit string) bool {
	return r.counts[subreddit] > 1
}
