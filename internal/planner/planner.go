// Package planner orchestrates one planning run: it composes the rotators
// and the timestamp model into a weekly plan, drives the content-generation
// collaborator strictly sequentially, and hands the finished calendar to the
// rule validator before returning it.
package planner

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
	"github.com/jason-ezenwa/reddit-mastermind/internal/llm"
	"github.com/jason-ezenwa/reddit-mastermind/internal/rotation"
	"github.com/jason-ezenwa/reddit-mastermind/internal/schedule"
	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
	"github.com/jason-ezenwa/reddit-mastermind/internal/validation"
)

// Planner turns a plan input into a validated weekly calendar. Rotator state
// is constructed fresh inside every Generate call, so a single Planner is
// safe for concurrent Generate calls.
type Planner struct {
	generator llm.ContentGenerator
	opts      Options
	limiter   *rate.Limiter
	clock     func() time.Time
	logger    *slog.Logger
}

// NewPlanner creates a planner around a content generator.
func NewPlanner(generator llm.ContentGenerator, opts Options) *Planner {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	var limiter *rate.Limiter
	if opts.GenerationInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.GenerationInterval), 1)
	}

	return &Planner{
		generator: generator,
		opts:      opts,
		limiter:   limiter,
		clock:     opts.Clock,
		logger:    opts.Logger,
	}
}

// Generate runs one full planning pass and returns the assembled calendar.
//
// The sequence: fresh rotators, one PostPlan per slot, sequential post
// generation, sequential comment generation per post, timestamp auto-fix,
// full validation. Any generation failure or blocking rule violation aborts
// the run; no partial calendar is ever returned. The planner assumes its
// input already passed domain validation at the boundary.
func (p *Planner) Generate(ctx context.Context, input domain.PlanInput) (*domain.Calendar, error) {
	week := input.WeekNumber
	if week < 1 {
		week = 1
	}

	rng := p.opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(p.clock().UnixNano()))
	}

	subreddits := rotation.NewSubredditRotator()
	keywords := rotation.NewKeywordRotator(rng)
	personas := rotation.NewPersonaRotator(rng)
	model := schedule.NewModel(rng)

	weekStart := schedule.WeekStart(p.clock().UTC(), week)
	total := input.Company.PostsPerWeek

	p.logger.Info("planning calendar",
		"company", input.Company.Name,
		"week", week,
		"posts", total,
		"provider", p.generator.ProviderName())

	// Planning step: all rotator reads and updates happen here, before any
	// external generation call.
	plans := make([]PostPlan, 0, total)
	for i := 0; i < total; i++ {
		plan := PostPlan{
			Index:     i,
			Subreddit: subreddits.Select(input.Company.Subreddits, i),
			Keywords:  keywords.Select(input.Keywords, i),
			Author:    personas.SelectPostAuthor(input.Personas, i),
			Timestamp: model.PostTime(weekStart, i, total),
		}
		plan.ICPSegment = InferICPSegment(plan.Subreddit, input.Company.Description)
		plans = append(plans, plan)

		p.logger.Debug("planned post slot",
			"index", i,
			"subreddit", plan.Subreddit,
			"author", plan.Author.Username,
			"segment", plan.ICPSegment)
	}

	posts, err := p.generatePosts(ctx, input.Company, plans)
	if err != nil {
		return nil, err
	}

	comments, err := p.generateComments(ctx, input, plans, posts, personas, model, rng)
	if err != nil {
		return nil, err
	}

	validation.FixTimestamps(posts, comments)

	usernames := make([]string, len(input.Personas))
	for i, persona := range input.Personas {
		usernames[i] = persona.Username
	}
	result := validation.ValidateAll(posts, comments, usernames)
	if !result.Valid {
		return nil, types.NewErrorf(types.PLAN_RULES_VIOLATED,
			"calendar failed validation: %s", strings.Join(result.Errors, "; "))
	}

	for _, w := range result.Warnings {
		p.logger.Warn("calendar warning", "warning", w)
	}
	p.logger.Info("calendar complete", "posts", len(posts), "comments", len(comments))

	return &domain.Calendar{
		RunID:       uuid.NewString(),
		WeekNumber:  week,
		CompanyName: input.Company.Name,
		Posts:       posts,
		Comments:    comments,
		Warnings:    result.Warnings,
		GeneratedAt: p.clock(),
	}, nil
}

// generatePosts runs the external post-generation calls strictly in order.
// A single failure aborts the run; retries, if any, belong to the caller.
func (p *Planner) generatePosts(ctx context.Context, company domain.CompanyProfile, plans []PostPlan) ([]domain.GeneratedPost, error) {
	posts := make([]domain.GeneratedPost, 0, len(plans))
	for _, plan := range plans {
		if err := p.pace(ctx); err != nil {
			return nil, types.WrapError(types.GEN_CANCELED, "generation canceled", err)
		}

		result, err := p.generator.GeneratePost(ctx, llm.PostRequest{
			Persona:    plan.Author,
			Subreddit:  plan.Subreddit,
			Keywords:   plan.Keywords,
			Company:    company,
			ICPSegment: plan.ICPSegment,
		})
		if err != nil {
			return nil, types.WrapError(types.PLAN_FAILED,
				"post generation failed, aborting run", err)
		}

		ids := make([]string, len(plan.Keywords))
		for i, k := range plan.Keywords {
			ids[i] = k.ID
		}

		post := domain.GeneratedPost{
			ID:             types.NewPostID(plan.Index + 1),
			Subreddit:      plan.Subreddit,
			Title:          result.Title,
			Body:           result.Body,
			AuthorUsername: plan.Author.Username,
			Timestamp:      plan.Timestamp,
			KeywordIDs:     ids,
		}
		posts = append(posts, post)

		p.logger.Debug("generated post", "id", post.ID, "subreddit", post.Subreddit)
	}
	return posts, nil
}

// generateComments builds and fulfils comment plans post by post. Comment
// generation within a post is intrinsically sequential: a reply's request
// cannot be constructed until its parent's text exists. The comment-id
// counter spans the whole run and is never reset between posts.
func (p *Planner) generateComments(
	ctx context.Context,
	input domain.PlanInput,
	plans []PostPlan,
	posts []domain.GeneratedPost,
	personas *rotation.PersonaRotator,
	model *schedule.Model,
	rng *rand.Rand,
) ([]domain.GeneratedComment, error) {
	var comments []domain.GeneratedComment
	counter := 1

	for i, post := range posts {
		authors := personas.SelectCommentAuthors(input.Personas, plans[i].Author, i)
		firstID := types.NewCommentID(counter)
		commentPlans := p.planComments(authors, plans[i].Author, firstID, rng)

		created := make(map[types.CommentID]domain.GeneratedComment, len(commentPlans))
		for _, plan := range commentPlans {
			if err := p.pace(ctx); err != nil {
				return nil, types.WrapError(types.GEN_CANCELED, "generation canceled", err)
			}

			var parent *domain.GeneratedComment
			if plan.ParentID != nil {
				if c, ok := created[*plan.ParentID]; ok {
					parent = &c
				}
			}

			req := llm.CommentRequest{
				Persona: plan.Author,
				Post: llm.PostContext{
					Title:          post.Title,
					Body:           post.Body,
					AuthorUsername: post.AuthorUsername,
				},
				Company:        input.Company,
				Position:       plan.Position,
				MentionCompany: plan.MentionCompany,
			}
			if parent != nil {
				req.Parent = &llm.ParentContext{
					Text:     parent.Text,
					Username: parent.AuthorUsername,
				}
			}

			result, err := p.generator.GenerateComment(ctx, req)
			if err != nil {
				return nil, types.WrapError(types.PLAN_FAILED,
					"comment generation failed, aborting run", err)
			}

			var ts time.Time
			switch {
			case plan.Position == llm.PositionReply && parent != nil:
				ts = model.ReplyCommentTime(parent.Timestamp)
			case plan.Position == llm.PositionLate:
				ts = model.LateCommentTime(post.Timestamp)
			default:
				ts = model.FirstCommentTime(post.Timestamp)
			}

			comment := domain.GeneratedComment{
				ID:             types.NewCommentID(counter),
				PostID:         post.ID,
				ParentID:       plan.ParentID,
				Text:           result.Text,
				AuthorUsername: plan.Author.Username,
				Timestamp:      ts,
			}
			counter++

			created[comment.ID] = comment
			comments = append(comments, comment)

			p.logger.Debug("generated comment",
				"id", comment.ID,
				"post", comment.PostID,
				"position", plan.Position,
				"timing", plan.TimingHint)
		}
	}
	return comments, nil
}

// planComments applies the fixed position policy to the selected commenters.
// The first commenter opens the thread; the second may branch into a reply;
// the post author always replies to the first comment and never mentions the
// company; everyone else arrives late.
func (p *Planner) planComments(authors []domain.Persona, postAuthor domain.Persona, firstID types.CommentID, rng *rand.Rand) []CommentPlan {
	plans := make([]CommentPlan, 0, len(authors))
	for i, author := range authors {
		plan := CommentPlan{Author: author}
		switch {
		case i == 0:
			plan.Position = llm.PositionFirst
			plan.MentionCompany = rng.Float64() < p.opts.FirstMentionProb
			plan.TimingHint = "15-60 minutes after the post"
		case author.Username == postAuthor.Username:
			plan.Position = llm.PositionReply
			plan.ParentID = &firstID
			plan.MentionCompany = false
			plan.TimingHint = "5-30 minutes after the first comment"
		case i == 1 && rng.Float64() < p.opts.ReplyBranchProb:
			plan.Position = llm.PositionReply
			plan.ParentID = &firstID
			plan.MentionCompany = rng.Float64() < p.opts.ReplyMentionProb
			plan.TimingHint = "5-30 minutes after the first comment"
		default:
			plan.Position = llm.PositionLate
			plan.MentionCompany = rng.Float64() < p.opts.LateMentionProb
			plan.TimingHint = "1-6 hours after the post"
		}
		plans = append(plans, plan)
	}
	return plans
}

// pace waits out the inter-call courtesy pause, honoring cancellation.
func (p *Planner) pace(ctx context.Context) error {
	if p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
