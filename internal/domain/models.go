package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jason-ezenwa/reddit-mastermind/internal/types"
)

var (
	subredditPattern = regexp.MustCompile(`^r/[A-Za-z0-9_]+$`)
	usernamePattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// MinPersonas is the smallest persona set a planning run accepts.
const MinPersonas = 2

// CompanyProfile describes the company the content week is planned for.
// The description is free text; the ICP heuristic mines it for segment hits.
type CompanyProfile struct {
	Name         string   `json:"name" yaml:"name"`
	Website      string   `json:"website" yaml:"website"`
	Description  string   `json:"description" yaml:"description"`
	Subreddits   []string `json:"target_subreddits" yaml:"target_subreddits"`
	PostsPerWeek int      `json:"posts_per_week" yaml:"posts_per_week"`
}

// Validate checks the company profile shape.
func (c CompanyProfile) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("company name is required")
	}
	if c.PostsPerWeek < 1 || c.PostsPerWeek > 7 {
		return fmt.Errorf("posts per week must be between 1 and 7, got %d", c.PostsPerWeek)
	}
	if len(c.Subreddits) == 0 {
		return fmt.Errorf("at least one target subreddit is required")
	}
	seen := make(map[string]struct{}, len(c.Subreddits))
	for _, s := range c.Subreddits {
		if !subredditPattern.MatchString(s) {
			return fmt.Errorf("invalid subreddit name %q: want r/<alphanumeric>", s)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("duplicate target subreddit %q", s)
		}
		seen[s] = struct{}{}
	}
	return nil
}

// Persona is a simulated Reddit user. The backstory seeds the tone and style
// of generated text; the planner itself only cares about the username.
type Persona struct {
	Username  string `json:"username" yaml:"username"`
	Backstory string `json:"backstory" yaml:"backstory"`
}

// Validate checks the persona shape.
func (p Persona) Validate() error {
	if p.Username == "" {
		return fmt.Errorf("persona username is required")
	}
	if !usernamePattern.MatchString(p.Username) {
		return fmt.Errorf("invalid persona username %q: want alphanumeric, underscore or hyphen", p.Username)
	}
	return nil
}

// Keyword pairs an opaque identifier with literal keyword text. Identifiers
// are unique within a run; insertion order carries no meaning.
type Keyword struct {
	ID   string `json:"keyword_id" yaml:"keyword_id"`
	Text string `json:"text" yaml:"text"`
}

// Validate checks the keyword shape.
func (k Keyword) Validate() error {
	if k.ID == "" {
		return fmt.Errorf("keyword ID is required")
	}
	if k.Text == "" {
		return fmt.Errorf("keyword %s: text is required", k.ID)
	}
	return nil
}

// PlanInput bundles everything a single planning run needs. Inputs are
// immutable; the planner never mutates them.
type PlanInput struct {
	Company    CompanyProfile `json:"company" yaml:"company"`
	Personas   []Persona      `json:"personas" yaml:"personas"`
	Keywords   []Keyword      `json:"keywords" yaml:"keywords"`
	WeekNumber int            `json:"week_number,omitempty" yaml:"week_number,omitempty"`
}

// Validate checks the whole input bundle. This is the boundary check the core
// relies on: the planner assumes an input that passed here.
func (in PlanInput) Validate() error {
	if err := in.Company.Validate(); err != nil {
		return fmt.Errorf("company: %w", err)
	}
	if len(in.Personas) < MinPersonas {
		return fmt.Errorf("at least %d personas are required, got %d", MinPersonas, len(in.Personas))
	}
	usernames := make(map[string]struct{}, len(in.Personas))
	for _, p := range in.Personas {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := usernames[p.Username]; dup {
			return fmt.Errorf("duplicate persona username %q", p.Username)
		}
		usernames[p.Username] = struct{}{}
	}
	if len(in.Keywords) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}
	ids := make(map[string]struct{}, len(in.Keywords))
	for _, k := range in.Keywords {
		if err := k.Validate(); err != nil {
			return err
		}
		if _, dup := ids[k.ID]; dup {
			return fmt.Errorf("duplicate keyword ID %q", k.ID)
		}
		ids[k.ID] = struct{}{}
	}
	if in.WeekNumber < 0 {
		return fmt.Errorf("week number must be >= 1, got %d", in.WeekNumber)
	}
	return nil
}

// GeneratedPost is one finished post on the calendar. Immutable after
// creation except for the validator's business-hours timestamp fix.
type GeneratedPost struct {
	ID             types.PostID `json:"post_id"`
	Subreddit      string       `json:"subreddit"`
	Title          string       `json:"title"`
	Body           string       `json:"body"`
	AuthorUsername string       `json:"author_username"`
	Timestamp      time.Time    `json:"timestamp"`
	KeywordIDs     []string     `json:"keyword_ids"`
}

// GeneratedComment is one finished comment. ParentID nil means top-level;
// otherwise it references another comment in the same run.
type GeneratedComment struct {
	ID             types.CommentID  `json:"comment_id"`
	PostID         types.PostID     `json:"post_id"`
	ParentID       *types.CommentID `json:"parent_comment_id"`
	Text           string           `json:"text"`
	AuthorUsername string           `json:"author_username"`
	Timestamp      time.Time        `json:"timestamp"`
}

// IsTopLevel reports whether the comment replies directly to its post.
func (c GeneratedComment) IsTopLevel() bool {
	return c.ParentID == nil
}

// Calendar is the assembled weekly plan returned by a successful run.
// Warnings carry non-blocking validation findings.
type Calendar struct {
	RunID       string             `json:"run_id"`
	WeekNumber  int                `json:"week_number"`
	CompanyName string             `json:"company_name"`
	Posts       []GeneratedPost    `json:"posts"`
	Comments    []GeneratedComment `json:"comments"`
	Warnings    []string           `json:"warnings,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// CommentsFor returns the comments owned by the given post, in creation order.
func (c *Calendar) CommentsFor(postID types.PostID) []GeneratedComment {
	var out []GeneratedComment
	for _, cm := range c.Comments {
		if cm.PostID == postID {
			out = append(out, cm)
		}
	}
	return out
}
