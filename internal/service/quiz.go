package service

import (
	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

// QuizService runs the selection and navigation state machine over sessions.
// Every transition checks its own precondition and reports false
// when it was not applicable, leaving the session untouched.
type QuizService struct {
	pool     []*entities.Question
	selector *QuestionSelector
}

// NewQuizService creates a QuizService over a validated question pool.
func NewQuizService(pool []*entities.Question, selector *QuestionSelector) (*QuizService, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if selector == nil {
		selector = NewQuestionSelector(nil)
	}

	return &QuizService{
		pool:     pool,
		selector: selector,
	}, nil
}

// PoolSize returns the number of questions in the pool.
func (s *QuizService) PoolSize() int {
	return len(s.pool)
}

// Start creates a session and shows its first question.
func (s *QuizService) Start() *entities.Session {
	sess := entities.NewSession()
	s.Advance(sess)
	return sess
}

// Advance draws a fresh question, appends it to the history and moves the cursor to it.
// It never replays an existing history entry, even when the cursor is behind the end.
func (s *QuizService) Advance(sess *entities.Session) bool {
	sel, ok := s.selector.SelectNext(s.pool, sess.Seen)
	if !ok {
		return false
	}

	if sel.NewRound || sess.Round == 0 {
		sess.Round++
	}
	sess.Seen = sel.Seen
	sess.History = append(sess.History, sel.Question)
	sess.Cursor = len(sess.History) - 1
	sess.Selected = ""
	sess.Revealed = false
	sess.Touch()

	return true
}

// Next advances only once an option has been selected during the current visit.
func (s *QuizService) Next(sess *entities.Session) bool {
	if sess.Cursor >= 0 && !sess.HasSelection() {
		return false
	}
	return s.Advance(sess)
}

// Retreat moves the cursor one question back and replays the stored answer, if any.
func (s *QuizService) Retreat(sess *entities.Session) bool {
	if !sess.CanRetreat() {
		return false
	}

	sess.Cursor--
	q := sess.Current()

	answer, ok := sess.Answers[q.Name]
	if ok {
		sess.Selected = answer
		sess.Revealed = true
	} else {
		sess.Selected = ""
		sess.Revealed = false
	}
	sess.Touch()

	return true
}

// Answer records option as the answer to the current question.
// It is a no-op when nothing is shown, when an option was already selected
// during this visit, or when option does not belong to the question.
func (s *QuizService) Answer(sess *entities.Session, option string) bool {
	q := sess.Current()
	if q == nil || sess.HasSelection() || !q.HasOption(option) {
		return false
	}

	sess.Selected = option
	sess.Answers[q.Name] = option
	if q.IsCorrect(option) {
		sess.Score++
	}
	sess.AnsweredCount++
	sess.Revealed = true
	sess.Touch()

	return true
}

// AnswerIndex answers with the option at index i of the current question.
func (s *QuizService) AnswerIndex(sess *entities.Session, i int) bool {
	q := sess.Current()
	if q == nil {
		return false
	}

	option, ok := q.OptionAt(i)
	if !ok {
		return false
	}

	return s.Answer(sess, option)
}

// Restart clears the session and shows a new first question.
func (s *QuizService) Restart(sess *entities.Session) bool {
	sess.Reset()
	return s.Advance(sess)
}

// View builds the display snapshot for sess.
func (s *QuizService) View(sess *entities.Session) entities.View {
	v := entities.View{
		Question:   sess.Current(),
		Cursor:     sess.Cursor,
		Number:     sess.AnsweredCount + 1,
		Selected:   sess.Selected,
		Revealed:   sess.Revealed,
		Round:      sess.Round,
		Score:      sess.Score,
		Answered:   sess.AnsweredCount,
		Accuracy:   Accuracy(sess.Score, sess.AnsweredCount),
		SeenCount:  len(sess.Seen),
		PoolSize:   len(s.pool),
		CanRetreat: sess.CanRetreat(),
		CanAdvance: sess.Cursor >= 0 && sess.HasSelection(),
	}
	if sess.Cursor > 0 {
		v.Previous = sess.Cursor
	}
	return v
}

// Accuracy returns 100*score/answered rounded half up, or 0 when nothing was answered.
func Accuracy(score, answered int) int {
	if answered <= 0 {
		return 0
	}
	return (200*score + answered) / (2 * answered)
}
