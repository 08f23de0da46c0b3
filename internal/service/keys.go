package service

import (
	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

// Key names shared by the front-ends.
const (
	KeyLeft  = "ArrowLeft"
	KeyEnter = "Enter"
	KeySpace = " "
)

// Action is a user intent resolved from a key press or a button.
type Action int

const (
	ActionNone Action = iota
	ActionAnswer
	ActionNext
	ActionPrevious
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionAnswer:
		return "answer"
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionRestart:
		return "restart"
	default:
		return "none"
	}
}

var answerKeys = map[string]int{
	"1": 0, "a": 0, "A": 0,
	"2": 1, "b": 1, "B": 1,
	"3": 2, "c": 2, "C": 2,
	"4": 3, "d": 3, "D": 3,
}

// AnswerKeyIndex maps an answer shortcut (1-4, a-d, A-D) to an option index.
func AnswerKeyIndex(key string) (int, bool) {
	i, ok := answerKeys[key]
	return i, ok
}

// ResolveKey maps key to an action against the session's current state.
// For ActionAnswer the returned index is the option position.
func ResolveKey(sess *entities.Session, key string) (Action, int) {
	if key == KeyLeft && sess.CanRetreat() {
		return ActionPrevious, 0
	}

	if sess.HasSelection() {
		if key == KeyEnter || key == KeySpace {
			return ActionNext, 0
		}
		return ActionNone, 0
	}

	if i, ok := AnswerKeyIndex(key); ok && sess.Current() != nil {
		return ActionAnswer, i
	}

	return ActionNone, 0
}

// HandleKey resolves key and applies the resulting transition.
// It returns the action that changed the session, or ActionNone.
func (s *QuizService) HandleKey(sess *entities.Session, key string) Action {
	action, idx := ResolveKey(sess, key)
	if s.Apply(sess, action, idx) {
		return action
	}
	return ActionNone
}

// Apply performs action on sess. idx is used by ActionAnswer only.
func (s *QuizService) Apply(sess *entities.Session, action Action, idx int) bool {
	switch action {
	case ActionAnswer:
		return s.AnswerIndex(sess, idx)
	case ActionNext:
		return s.Next(sess)
	case ActionPrevious:
		return s.Retreat(sess)
	case ActionRestart:
		return s.Restart(sess)
	default:
		return false
	}
}
