// Package schedule computes simulated post and comment timestamps.
//
// Everything here is pure apart from the injected random source: the model
// fabricates plausible posting times, it never schedules anything.
package schedule

import (
	"math/rand"
	"time"
)

// Hour bounds for initial post-time assignment. The auto-fix pass in the
// validator uses the wider AdjustToBusinessHours window instead.
const (
	earliestPostHour = 9
	latestPostHour   = 21
)

// MaxCommentAge is the longest a comment may trail its post.
const MaxCommentAge = 7 * 24 * time.Hour

// Model fabricates simulated timestamps from an injected random source.
// Inject a seeded *rand.Rand in tests to force deterministic draws.
type Model struct {
	rng *rand.Rand
}

// NewModel returns a timestamp model drawing from rng.
func NewModel(rng *rand.Rand) *Model {
	return &Model{rng: rng}
}

// PostTime places post postIndex of totalPosts within the week starting at
// weekStart (a Monday-anchored week boundary).
//
// Posts spread across the week by floor(postIndex*7/totalPosts) days. A post
// landing on a weekend is relocated to the following Monday or Tuesday with
// 70% probability; the remaining 30% stay put, modeling occasional weekend
// activity. The hour comes from two weighted bands: half the time the
// afternoon peak [14,18), otherwise uniform in [9,21).
func (m *Model) PostTime(weekStart time.Time, postIndex, totalPosts int) time.Time {
	dayOffset := postIndex * 7 / totalPosts
	day := weekStart.AddDate(0, 0, dayOffset)

	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		if m.rng.Float64() < 0.7 {
			daysToMonday := 2
			if wd == time.Sunday {
				daysToMonday = 1
			}
			day = day.AddDate(0, 0, daysToMonday+m.rng.Intn(2))
		}
	}

	var hour int
	if m.rng.Float64() < 0.5 {
		hour = 14 + m.rng.Intn(4)
	} else {
		hour = earliestPostHour + m.rng.Intn(latestPostHour-earliestPostHour)
	}
	minute := m.rng.Intn(60)

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// FirstCommentTime places the first comment 15-60 minutes after the post.
func (m *Model) FirstCommentTime(postTime time.Time) time.Time {
	return postTime.Add(time.Duration(15+m.rng.Intn(46)) * time.Minute)
}

// ReplyCommentTime places a reply 5-30 minutes after its parent comment.
func (m *Model) ReplyCommentTime(parentTime time.Time) time.Time {
	return parentTime.Add(time.Duration(5+m.rng.Intn(26)) * time.Minute)
}

// LateCommentTime places a late comment 1-6 hours after the post, plus up to
// 59 extra minutes.
func (m *Model) LateCommentTime(postTime time.Time) time.Time {
	hours := time.Duration(1+m.rng.Intn(6)) * time.Hour
	minutes := time.Duration(m.rng.Intn(60)) * time.Minute
	return postTime.Add(hours + minutes)
}

// AdjustToBusinessHours is the corrective tool applied after generation:
// hours before 06:00 snap to 09:00 the same day, hours at or after 23:00
// snap to 09:00 the next day. Anything else passes through unchanged, so
// the adjustment is idempotent.
func AdjustToBusinessHours(t time.Time) time.Time {
	switch {
	case t.Hour() < 6:
		return time.Date(t.Year(), t.Month(), t.Day(), 9, 0, 0, 0, t.Location())
	case t.Hour() >= 23:
		next := t.AddDate(0, 0, 1)
		return time.Date(next.Year(), next.Month(), next.Day(), 9, 0, 0, 0, t.Location())
	default:
		return t
	}
}

// IsValidCommentTime reports whether commentTime falls strictly after
// postTime and within MaxCommentAge of it, measured in minutes.
func IsValidCommentTime(postTime, commentTime time.Time) bool {
	minutes := commentTime.Sub(postTime).Minutes()
	return minutes > 0 && minutes < MaxCommentAge.Minutes()
}

// WeekStart returns the Monday 00:00 boundary of planning week weekNumber,
// counted from now: week 1 is the upcoming Monday (or today, if now falls on
// a Monday). The result is in now's location with the clock zeroed.
func WeekStart(now time.Time, weekNumber int) time.Time {
	if weekNumber < 1 {
		weekNumber = 1
	}
	daysAhead := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	day := now.AddDate(0, 0, daysAhead+(weekNumber-1)*7)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}
