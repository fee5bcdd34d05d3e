// Package validation checks a finished calendar against the authenticity
// rules: no subreddit overposting, diverse topics, plausible timestamps,
// balanced persona usage, and a well-formed comment-thread shape.
package validation

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
	"github.com/jason-ezenwa/reddit-mastermind/internal/schedule"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

// Similarity thresholds for the topic-diversity rule.
const (
	similarityErrorThreshold   = 0.7
	similarityWarningThreshold = 0.5
)

// ValidateAll runs every business rule and merges the results. Personas is
// the full cast supplied to the run; it backs the unused-persona warning.
func ValidateAll(posts []domain.GeneratedPost, comments []domain.GeneratedComment, personas []string) types.ValidationResult {
	result := types.NewValidationResult()
	result.Merge(ValidateNoOverposting(posts))
	result.Merge(ValidateTopicDiversity(posts))
	result.Merge(ValidateTimestampRealism(posts, comments))
	result.Merge(ValidatePersonaBalance(posts, comments, personas))
	result.Merge(ValidateThreadStructure(comments))
	return result
}

// ValidateNoOverposting flags any subreddit that received more than one
// post. This is a hard rule: a violation is fatal, never auto-fixed.
func ValidateNoOverposting(posts []domain.GeneratedPost) types.ValidationResult {
	result := types.NewValidationResult()

	counts := lo.CountValuesBy(posts, func(p domain.GeneratedPost) string {
		return p.Subreddit
	})
	for _, subreddit := range lo.Keys(counts) {
		if counts[subreddit] > 1 {
			result.AddError("subreddit %s has %d posts this week, maximum is 1", subreddit, counts[subreddit])
		}
	}
	return result
}

// ValidateTopicDiversity compares every pair of post titles by Jaccard
// similarity over words longer than 3 characters. Above 0.7 is a blocking
// error; within (0.5, 0.7] is a warning.
func ValidateTopicDiversity(posts []domain.GeneratedPost) types.ValidationResult {
	result := types.NewValidationResult()

	for i := 0; i < len(posts); i++ {
		for j := i + 1; j < len(posts); j++ {
			similarity := titleSimilarity(posts[i].Title, posts[j].Title)
			switch {
			case similarity > similarityErrorThreshold:
				result.AddError("posts %s and %s are too similar (%.0f%% title overlap)",
					posts[i].ID, posts[j].ID, similarity*100)
			case similarity > similarityWarningThreshold:
				result.AddWarning("posts %s and %s have overlapping topics (%.0f%% title overlap)",
					posts[i].ID, posts[j].ID, similarity*100)
			}
		}
	}
	return result
}

// titleSimilarity is the Jaccard index over the significant-word sets of two
// lower-cased titles. Both sets empty counts as identical; exactly one empty
// counts as fully distinct.
func titleSimilarity(a, b string) float64 {
	wordsA := significantWords(a)
	wordsB := significantWords(b)

	if len(wordsA) == 0 && len(wordsB) == 0 {
		return 1.0
	}
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func significantWords(title string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if len(w) > 3 {
			words[w] = struct{}{}
		}
	}
	return words
}

// ValidateTimestampRealism checks post hours and comment timing. Post hours
// before 06:00 warn; the narrower 02:00-04:59 band is additionally a
// blocking error. Comment times must fall strictly after their post and
// within seven days; replies must follow their parents.
func ValidateTimestampRealism(posts []domain.GeneratedPost, comments []domain.GeneratedComment) types.ValidationResult {
	result := types.NewValidationResult()

	for _, p := range posts {
		hour := p.Timestamp.Hour()
		if hour < 6 {
			result.AddWarning("post %s is timestamped at %02d:00, outside plausible posting hours", p.ID, hour)
		}
		if hour >= 2 && hour < 5 {
			result.AddError("post %s is timestamped at %02d:00, deep night posting is implausible", p.ID, hour)
		}
	}

	postsByID := lo.KeyBy(posts, func(p domain.GeneratedPost) types.PostID {
		return p.ID
	})
	commentsByID := lo.KeyBy(comments, func(c domain.GeneratedComment) types.CommentID {
		return c.ID
	})

	for _, c := range comments {
		post, ok := postsByID[c.PostID]
		if !ok {
			result.AddError("comment %s references non-existent post %s", c.ID, c.PostID)
			continue
		}

		if !schedule.IsValidCommentTime(post.Timestamp, c.Timestamp) {
			diff := c.Timestamp.Sub(post.Timestamp)
			if diff <= 0 {
				result.AddError("comment %s is timestamped before its post %s", c.ID, c.PostID)
			} else {
				result.AddError("comment %s arrives %.1f days after post %s, maximum is 7",
					c.ID, diff.Hours()/24, c.PostID)
			}
		}

		if c.ParentID != nil {
			parent, ok := commentsByID[*c.ParentID]
			if !ok {
				continue // thread-structure rule reports the dangling parent
			}
			gap := c.Timestamp.Sub(parent.Timestamp)
			if gap < 0 {
				result.AddError("reply %s is timestamped before its parent %s", c.ID, parent.ID)
			} else if gap <= time.Minute {
				result.AddWarning("reply %s lands within a minute of its parent %s", c.ID, parent.ID)
			}
		}
	}
	return result
}

// ValidatePersonaBalance checks content attribution per persona. A top
// share above 50% is a blocking error; above 40% additionally warns. Both
// fire together when applicable. Personas with no content at all warn.
func ValidatePersonaBalance(posts []domain.GeneratedPost, comments []domain.GeneratedComment, personas []string) types.ValidationResult {
	result := types.NewValidationResult()

	counts := make(map[string]int)
	for _, p := range posts {
		counts[p.AuthorUsername]++
	}
	for _, c := range comments {
		counts[c.AuthorUsername]++
	}

	total := lo.Sum(lo.Values(counts))
	if total > 0 {
		topUser := ""
		topCount := 0
		for user, n := range counts {
			if n > topCount {
				topUser, topCount = user, n
			}
		}
		share := float64(topCount) / float64(total)
		if share > 0.5 {
			result.AddError("persona %s authored %.0f%% of all content, maximum is 50%%", topUser, share*100)
		}
		if share > 0.4 {
			result.AddWarning("persona %s authored %.0f%% of all content, consider spreading usage", topUser, share*100)
		}
	}

	unused := lo.Filter(personas, func(u string, _ int) bool {
		return counts[u] == 0
	})
	if len(unused) > 0 {
		result.AddWarning("personas with no content this week: %s", strings.Join(unused, ", "))
	}
	return result
}

// ValidateThreadStructure checks parent references independently of the
// planner: every non-null parent must resolve to a comment in the run, and
// no comment may parent itself. The planner never produces either violation,
// but the rule does not trust construction.
func ValidateThreadStructure(comments []domain.GeneratedComment) types.ValidationResult {
	result := types.NewValidationResult()

	ids := lo.SliceToMap(comments, func(c domain.GeneratedComment) (types.CommentID, struct{}) {
		return c.ID, struct{}{}
	})

	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		if *c.ParentID == c.ID {
			result.AddError("comment %s is its own parent", c.ID)
			continue
		}
		if _, ok := ids[*c.ParentID]; !ok {
			result.AddError("comment %s references non-existent parent %s", c.ID, *c.ParentID)
		}
	}
	return result
}
