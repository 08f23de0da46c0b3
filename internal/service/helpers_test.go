package service

import (
	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

// seqRand returns the queued values in order, then zeros.
// Values are clamped into [0, n).
type seqRand struct {
	vals []int
}

func (r *seqRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func newQuestion(name, correct string) *entities.Question {
	return &entities.Question{
		Name:          name,
		Prompt:        "Prompt for " + name,
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: correct,
	}
}

func twoQuestionPool() []*entities.Question {
	return []*entities.Question{
		newQuestion("Q1", "A"),
		newQuestion("Q2", "B"),
	}
}

func newTestQuiz(pool []*entities.Question, vals ...int) *QuizService {
	s, err := NewQuizService(pool, NewQuestionSelector(&seqRand{vals: vals}))
	if err != nil {
		panic(err)
	}
	return s
}
