package planner

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
	genai "github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/llm/providers"
	"github.com/jason-ezenwa/reddit-mastermind/internal/schedule"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

// testClock pins every run to Wednesday 2025-12-03, anchoring week 1 at
// Monday 2025-12-08.
func testClock() time.Time {
	return time.Date(2025, 12, 3, 10, 0, 0, 0, time.UTC)
}

func testInput() domain.PlanInput {
	return domain.PlanInput{
		Company: domain.CompanyProfile{
			Name:         "SlideForge",
			Website:      "https://slideforge.example",
			Description:  "AI tool that turns outlines into polished presentation decks",
			Subreddits:   []string{"r/PowerPoint", "r/GoogleSlides", "r/productivity"},
			PostsPerWeek: 2,
		},
		Personas: []domain.Persona{
			{Username: "riley_ops", Backstory: "operations lead at a consultancy"},
			{Username: "jordan_consults", Backstory: "independent strategy consultant"},
			{Username: "emily_econ", Backstory: "economics lecturer"},
			{Username: "sam_sells", Backstory: "b2b account executive"},
			{Username: "taylor_teaches", Backstory: "high school teacher"},
		},
		Keywords: []domain.Keyword{
			{ID: "K1", Text: "presentation automation"},
			{ID: "K2", Text: "slide design tips"},
			{ID: "K3", Text: "powerpoint alternatives"},
		},
		WeekNumber: 1,
	}
}

func testPlanner(gen genai.ContentGenerator, seed int64) *Planner {
	opts := DefaultOptions()
	opts.GenerationInterval = 0
	opts.Rand = rand.New(rand.NewSource(seed))
	opts.Clock = testClock
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPlanner(gen, opts)
}

// TestPlanner_Generate_AssemblesCalendar runs the full pipeline against the
// mock and checks the calendar shape end to end.
func TestPlanner_Generate_AssemblesCalendar(t *testing.T) {
	mock := providers.NewMockGenerator()
	p := testPlanner(mock, 1)
	input := testInput()

	cal, err := p.Generate(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, cal)

	assert.NotEmpty(t, cal.RunID)
	assert.Equal(t, 1, cal.WeekNumber)
	assert.Equal(t, "SlideForge", cal.CompanyName)
	assert.Equal(t, testClock(), cal.GeneratedAt)

	require.Len(t, cal.Posts, 2)
	assert.Equal(t, types.PostID("P1"), cal.Posts[0].ID)
	assert.Equal(t, types.PostID("P2"), cal.Posts[1].ID)
	assert.NotEqual(t, cal.Posts[0].Subreddit, cal.Posts[1].Subreddit)

	weekStart := schedule.WeekStart(testClock(), 1)
	usernames := map[string]bool{}
	for _, persona := range input.Personas {
		usernames[persona.Username] = true
	}
	for _, post := range cal.Posts {
		assert.Contains(t, input.Company.Subreddits, post.Subreddit)
		assert.True(t, usernames[post.AuthorUsername], "unknown author %s", post.AuthorUsername)
		assert.NotEmpty(t, post.Title)
		assert.NotEmpty(t, post.Body)
		assert.False(t, post.Timestamp.Before(weekStart))
		assert.True(t, post.Timestamp.Before(weekStart.AddDate(0, 0, 7)))
		assert.GreaterOrEqual(t, len(post.KeywordIDs), 1)
		assert.LessOrEqual(t, len(post.KeywordIDs), 3)
	}

	require.NotEmpty(t, cal.Comments)
	for _, post := range cal.Posts {
		thread := cal.CommentsFor(post.ID)
		assert.GreaterOrEqual(t, len(thread), 2, "post %s has a thin thread", post.ID)
		for _, c := range thread {
			assert.True(t, c.Timestamp.After(post.Timestamp), "comment %s precedes its post", c.ID)
			assert.NotEmpty(t, c.Text)
		}
	}
}

// TestPlanner_Generate_CommentIDsAreRunScoped verifies comment ids count up
// C1, C2, ... across posts without resetting.
func TestPlanner_Generate_CommentIDsAreRunScoped(t *testing.T) {
	mock := providers.NewMockGenerator()
	p := testPlanner(mock, 2)

	cal, err := p.Generate(context.Background(), testInput())
	require.NoError(t, err)

	for i, c := range cal.Comments {
		assert.Equal(t, types.NewCommentID(i+1), c.ID)
	}
}

// TestPlanner_Generate_ThreadShape verifies every reply points at an earlier
// comment of the same post and never precedes its parent.
func TestPlanner_Generate_ThreadShape(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		mock := providers.NewMockGenerator()
		p := testPlanner(mock, seed)

		cal, err := p.Generate(context.Background(), testInput())
		require.NoError(t, err, "seed %d", seed)

		byID := map[types.CommentID]domain.GeneratedComment{}
		for _, c := range cal.Comments {
			byID[c.ID] = c
		}
		for _, c := range cal.Comments {
			if c.ParentID == nil {
				continue
			}
			parent, ok := byID[*c.ParentID]
			require.True(t, ok, "seed %d: dangling parent %s", seed, *c.ParentID)
			assert.Equal(t, c.PostID, parent.PostID, "seed %d: cross-post reply", seed)
			assert.True(t, c.Timestamp.After(parent.Timestamp), "seed %d: reply precedes parent", seed)
		}
	}
}

// TestPlanner_Generate_FirstCommentPerPost verifies each post's thread opens
// with a first-position comment from a different persona.
func TestPlanner_Generate_FirstCommentPerPost(t *testing.T) {
	mock := providers.NewMockGenerator()
	p := testPlanner(mock, 3)

	cal, err := p.Generate(context.Background(), testInput())
	require.NoError(t, err)

	firstCalls := 0
	for _, call := range mock.CommentCalls {
		if call.Position == genai.PositionFirst {
			firstCalls++
			assert.NotEqual(t, call.Post.AuthorUsername, call.Persona.Username,
				"post author opened their own thread")
		}
	}
	assert.Equal(t, len(cal.Posts), firstCalls)
}

// TestPlanner_Generate_AuthorRepliesNeverMention verifies the original
// poster's own reply never carries the product mention flag.
func TestPlanner_Generate_AuthorRepliesNeverMention(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		mock := providers.NewMockGenerator()
		p := testPlanner(mock, seed)

		_, err := p.Generate(context.Background(), testInput())
		require.NoError(t, err, "seed %d", seed)

		for _, call := range mock.CommentCalls {
			if call.Position == genai.PositionReply && call.Persona.Username == call.Post.AuthorUsername {
				assert.False(t, call.MentionCompany, "seed %d: author reply mentions the company", seed)
			}
		}
	}
}

// TestPlanner_Generate_PassesICPSegment verifies segment inference reaches
// the generation request.
func TestPlanner_Generate_PassesICPSegment(t *testing.T) {
	mock := providers.NewMockGenerator()
	p := testPlanner(mock, 4)

	_, err := p.Generate(context.Background(), testInput())
	require.NoError(t, err)

	require.NotEmpty(t, mock.PostCalls)
	for _, call := range mock.PostCalls {
		if call.Subreddit == "r/PowerPoint" || call.Subreddit == "r/GoogleSlides" {
			assert.Equal(t, "presentations", call.ICPSegment)
		}
	}
}

// TestPlanner_Generate_PostFailureAborts verifies a single failed post
// generation aborts the run with no partial calendar.
func TestPlanner_Generate_PostFailureAborts(t *testing.T) {
	mock := providers.NewMockGenerator()
	mock.FailPostAt = 2
	p := testPlanner(mock, 5)

	cal, err := p.Generate(context.Background(), testInput())
	require.Error(t, err)
	assert.Nil(t, cal)
	assert.Equal(t, types.PLAN_FAILED, types.CodeOf(err))
}

// TestPlanner_Generate_CommentFailureAborts verifies a failed comment
// generation aborts the run as well.
func TestPlanner_Generate_CommentFailureAborts(t *testing.T) {
	mock := providers.NewMockGenerator()
	mock.FailCommentAt = 1
	p := testPlanner(mock, 6)

	cal, err := p.Generate(context.Background(), testInput())
	require.Error(t, err)
	assert.Nil(t, cal)
	assert.Equal(t, types.PLAN_FAILED, types.CodeOf(err))
}

// TestPlanner_Generate_RuleViolationAborts verifies a blocking validation
// failure rejects the whole run: near-identical generated titles trip the
// topic-diversity rule and Generate must fail rather than return the
// calendar.
func TestPlanner_Generate_RuleViolationAborts(t *testing.T) {
	mock := providers.NewMockGenerator().WithPostResults(
		genai.PostResult{Title: "duplicate slide deck question", Body: "body one"},
		genai.PostResult{Title: "duplicate slide deck question", Body: "body two"},
	)
	p := testPlanner(mock, 9)

	cal, err := p.Generate(context.Background(), testInput())
	require.Error(t, err)
	assert.Nil(t, cal)
	assert.Equal(t, types.PLAN_RULES_VIOLATED, types.CodeOf(err))
	assert.Contains(t, err.Error(), "too similar")
}

// TestPlanner_Generate_CanceledContext aborts before calling the generator.
func TestPlanner_Generate_CanceledContext(t *testing.T) {
	mock := providers.NewMockGenerator()
	p := testPlanner(mock, 7)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cal, err := p.Generate(ctx, testInput())
	require.Error(t, err)
	assert.Nil(t, cal)
	assert.Equal(t, types.GEN_CANCELED, types.CodeOf(err))
}

// TestPlanner_Generate_WeekNumbering defaults week 0 to 1 and anchors later
// weeks seven days apart.
func TestPlanner_Generate_WeekNumbering(t *testing.T) {
	mock := providers.NewMockGenerator()
	p := testPlanner(mock, 8)

	input := testInput()
	input.WeekNumber = 0
	cal, err := p.Generate(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, cal.WeekNumber)

	input.WeekNumber = 2
	mock2 := providers.NewMockGenerator()
	p2 := testPlanner(mock2, 8)
	cal2, err := p2.Generate(context.Background(), input)
	require.NoError(t, err)

	week2Start := schedule.WeekStart(testClock(), 2)
	for _, post := range cal2.Posts {
		assert.False(t, post.Timestamp.Before(week2Start))
	}
}

// TestPlanner_Generate_SubredditsNeverRepeat holds across many seeds when
// inventory covers the week.
func TestPlanner_Generate_SubredditsNeverRepeat(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		mock := providers.NewMockGenerator()
		p := testPlanner(mock, seed)

		cal, err := p.Generate(context.Background(), testInput())
		require.NoError(t, err, "seed %d", seed)

		seen := map[string]bool{}
		for _, post := range cal.Posts {
			assert.False(t, seen[post.Subreddit], "seed %d: subreddit %s repeated", seed, post.Subreddit)
			seen[post.Subreddit] = true
		}
	}
}
