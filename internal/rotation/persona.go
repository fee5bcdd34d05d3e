package rotation

import (
	"math/rand"
	"sort"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
)

// authorJoinProb is the chance the post author joins their own thread.
const authorJoinProb = 0.7

type personaStats struct {
	posts    int
	comments int
	lastUsed int
}

// PersonaRotator tracks per-persona post and comment counts so content
// attribution stays spread across the cast.
type PersonaRotator struct {
	stats map[string]*personaStats
	rng   *rand.Rand
}

// NewPersonaRotator returns a rotator drawing its target-count and
// author-join selections from rng.
func NewPersonaRotator(rng *rand.Rand) *PersonaRotator {
	return &PersonaRotator{
		stats: make(map[string]*personaStats),
		rng:   rng,
	}
}

func (r *PersonaRotator) statsFor(username string) *personaStats {
	s, ok := r.stats[username]
	if !ok {
		s = &personaStats{}
		r.stats[username] = s
	}
	return s
}

// SelectPostAuthor picks the persona with the fewest posts so far, tie-broken
// by least-recently-used index.
func (r *PersonaRotator) SelectPostAuthor(personas []domain.Persona, postIndex int) domain.Persona {
	ranked := make([]domain.Persona, len(personas))
	copy(ranked, personas)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := r.statsFor(ranked[i].Username), r.statsFor(ranked[j].Username)
		if a.posts != b.posts {
			return a.posts < b.posts
		}
		return a.lastUsed < b.lastUsed
	})

	chosen := ranked[0]
	s := r.statsFor(chosen.Username)
	s.posts++
	s.lastUsed = postIndex
	return chosen
}

// SelectCommentAuthors picks 1-4 commenting personas for a post.
//
// The post author is excluded from the candidate pool unless it is the only
// persona available. The target count is uniform in {2,3,4}, capped at the
// available candidates; candidates rank by (comment count, last-used index)
// ascending. Independently, with 70% probability the post author is appended
// afterwards, modeling the original poster joining their own thread, so the
// returned list can exceed the computed target by one.
func (r *PersonaRotator) SelectCommentAuthors(personas []domain.Persona, postAuthor domain.Persona, postIndex int) []domain.Persona {
	var candidates []domain.Persona
	for _, p := range personas {
		if p.Username != postAuthor.Username {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		s := r.statsFor(postAuthor.Username)
		s.comments++
		s.lastUsed = postIndex
		return []domain.Persona{postAuthor}
	}

	target := 2 + r.rng.Intn(3)
	if target > len(candidates) {
		target = len(candidates)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := r.statsFor(candidates[i].Username), r.statsFor(candidates[j].Username)
		if a.comments != b.comments {
			return a.comments < b.comments
		}
		return a.lastUsed < b.lastUsed
	})

	selected := make([]domain.Persona, 0, target+1)
	for _, p := range candidates[:target] {
		s := r.statsFor(p.Username)
		s.comments++
		s.lastUsed = postIndex
		selected = append(selected, p)
	}

	if r.rng.Float64() < authorJoinProb {
		r.statsFor(postAuthor.Username).comments++
		selected = append(selected, postAuthor)
	}

	return selected
}

// IsBalanced reports whether the most active persona's share of total
// content (posts + comments) stays at or below half. Vacuously true before
// any content exists.
func (r *PersonaRotator) IsBalanced() bool {
	total := 0
	max := 0
	for _, s := range r.stats {
		n := s.posts + s.comments
		total += n
		if n > max {
			max = n
		}
	}
	if total == 0 {
		return true
	}
	return float64(max)/float64(total) <= 0.5
}
