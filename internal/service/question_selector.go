package service

import (
	"math/rand"
	"time"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

// RandomSource is the source of randomness used for question draws.
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Selection is the outcome of a single draw.
type Selection struct {
	Question *entities.Question
	Seen     map[string]struct{} // seen set including the drawn question
	NewRound bool                // every question had been seen, so the seen set was reset
}

// QuestionSelector picks the next unseen question from a fixed pool.
type QuestionSelector struct {
	rng RandomSource
}

// NewQuestionSelector creates a new QuestionSelector.
// A nil rng falls back to a time-seeded generator.
func NewQuestionSelector(rng RandomSource) *QuestionSelector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuestionSelector{rng: rng}
}

// SelectNext draws uniformly from the questions of pool whose names are not in seen.
// When every question has been seen, a new round starts: seen is cleared and
// the draw is made from the whole pool. The input set is never modified.
// It returns false when the pool is empty.
func (s *QuestionSelector) SelectNext(pool []*entities.Question, seen map[string]struct{}) (Selection, bool) {
	if len(pool) == 0 {
		return Selection{}, false
	}

	available := make([]*entities.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.Name]; !ok {
			available = append(available, q)
		}
	}

	next := make(map[string]struct{}, len(seen)+1)
	newRound := len(available) == 0
	if newRound {
		available = pool
	} else {
		for name := range seen {
			next[name] = struct{}{}
		}
	}

	q := available[s.rng.Intn(len(available))]
	next[q.Name] = struct{}{}

	return Selection{
		Question: q,
		Seen:     next,
		NewRound: newRound,
	}, true
}
