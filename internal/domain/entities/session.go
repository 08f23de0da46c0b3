package entities

import (
	"time"
)

// Session is the in-memory state of one quiz run.
// It is mutated only through the QuizService transitions.
type Session struct {
	Seen          map[string]struct{} // question names drawn since the last round reset
	History       []*Question         // questions in the order they were presented
	Cursor        int                 // index into History, -1 before the first question
	Answers       map[string]string   // question name -> option chosen by the user
	Round         int                 // pass over the pool, 1 after the first draw
	Score         int                 // number of correct answers
	AnsweredCount int                 // number of answers given

	Selected string // option selected during the current visit, empty when none
	Revealed bool   // result of the current question is shown

	StartedAt time.Time
	UpdatedAt time.Time
}

// NewSession returns a session in its initial state, with no question shown.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		Seen:      make(map[string]struct{}),
		Cursor:    -1,
		Answers:   make(map[string]string),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Reset puts the session back into its initial state.
func (s *Session) Reset() {
	s.Seen = make(map[string]struct{})
	s.History = nil
	s.Cursor = -1
	s.Answers = make(map[string]string)
	s.Round = 0
	s.Score = 0
	s.AnsweredCount = 0
	s.Selected = ""
	s.Revealed = false
	s.StartedAt = time.Now()
	s.Touch()
}

// Current returns the question under the cursor, or nil before the first question.
func (s *Session) Current() *Question {
	if s.Cursor < 0 || s.Cursor >= len(s.History) {
		return nil
	}
	return s.History[s.Cursor]
}

// HasSelection reports whether an option was selected during the current visit.
func (s *Session) HasSelection() bool {
	return s.Selected != ""
}

// CanRetreat reports whether there is an earlier question in the history.
func (s *Session) CanRetreat() bool {
	return s.Cursor > 0
}

// Touch records activity on the session.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}

// IdleSince reports whether the session has seen no activity since t.
func (s *Session) IdleSince(t time.Time) bool {
	return s.UpdatedAt.Before(t)
}
