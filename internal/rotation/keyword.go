package rotation

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/jason-ezenwa/reddit-mastermind/internal/domain"
)

// twoKeywordProb is the chance a post gets 2 keywords instead of 3.
const twoKeywordProb = 0.6

// KeywordRotator tracks per-keyword usage and previously seen keyword
// combinations so consecutive posts neither reuse the same keywords nor
// repeat an exact combination.
type KeywordRotator struct {
	usage      map[string]int
	lastUsed   map[string]int
	seenCombos map[string]struct{}
	rng        *rand.Rand
}

// NewKeywordRotator returns a rotator drawing its count selection from rng.
func NewKeywordRotator(rng *rand.Rand) *KeywordRotator {
	return &KeywordRotator{
		usage:      make(map[string]int),
		lastUsed:   make(map[string]int),
		seenCombos: make(map[string]struct{}),
		rng:        rng,
	}
}

// Select picks 2 or 3 keywords for post postIndex.
//
// Candidates are ranked ascending by (usage count, last-used index) and
// accepted one at a time. A candidate is skipped only when adding it would
// reproduce an already-seen combination and at least one keyword is already
// accepted. The very first pick is never skipped, so selection cannot loop
// forever. If the ranked list runs out before the target count is reached,
// a second pass fills the remaining slots from the leftovers ignoring
// combination novelty. With a single keyword available, selection degrades
// to that one keyword.
func (r *KeywordRotator) Select(keywords []domain.Keyword, postIndex int) []domain.Keyword {
	target := 3
	if r.rng.Float64() < twoKeywordProb {
		target = 2
	}

	ranked := make([]domain.Keyword, len(keywords))
	copy(ranked, keywords)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if r.usage[a.ID] != r.usage[b.ID] {
			return r.usage[a.ID] < r.usage[b.ID]
		}
		return r.lastUsed[a.ID] < r.lastUsed[b.ID]
	})

	var selected []domain.Keyword
	for _, cand := range ranked {
		if len(selected) == target {
			break
		}
		if len(selected) >= 1 && r.comboSeen(append(keywordIDs(selected), cand.ID)) {
			continue
		}
		selected = append(selected, cand)
		r.accept(cand, postIndex)
	}

	// All remaining combinations already seen: fill from leftover
	// least-used keywords without the novelty constraint.
	if len(selected) < target {
		chosen := make(map[string]struct{}, len(selected))
		for _, k := range selected {
			chosen[k.ID] = struct{}{}
		}
		for _, cand := range ranked {
			if len(selected) == target {
				break
			}
			if _, ok := chosen[cand.ID]; ok {
				continue
			}
			selected = append(selected, cand)
			r.accept(cand, postIndex)
		}
	}

	r.seenCombos[comboKey(keywordIDs(selected))] = struct{}{}
	return selected
}

func (r *KeywordRotator) accept(k domain.Keyword, postIndex int) {
	r.usage[k.ID]++
	r.lastUsed[k.ID] = postIndex
}

func (r *KeywordRotator) comboSeen(ids []string) bool {
	_, ok := r.seenCombos[comboKey(ids)]
	return ok
}

// comboKey is the sorted, comma-joined set of keyword IDs chosen together.
func comboKey(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func keywordIDs(keywords []domain.Keyword) []string {
	ids := make([]string, len(keywords))
	for i, k := range keywords {
		ids[i] = k.ID
	}
	return ids
}
