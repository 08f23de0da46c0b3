package entities

import (
	"strconv"
)

// View is a read-only snapshot of what a front-end should display for a session.
type View struct {
	Question *Question // current question, nil before the first draw
	Cursor   int       // position of Question in the history, -1 before the first draw
	Number   int       // question counter shown to the user (answered + 1)
	Previous int       // number of earlier questions reachable with "previous"

	Selected string // option chosen during this visit, empty when none
	Revealed bool   // result of the current question is visible

	Round    int // pass over the pool, starting at 1
	Score    int
	Answered int
	Accuracy int // percent, rounded half up

	SeenCount int
	PoolSize  int

	CanRetreat bool
	CanAdvance bool
}

// Progress returns the share of the pool drawn in the current round as a percentage.
func (v View) Progress() float64 {
	if v.PoolSize <= 0 {
		return 0
	}
	return float64(v.SeenCount) / float64(v.PoolSize) * 100
}

// ProgressWidth formats Progress as a CSS-style width, e.g. "50%".
func (v View) ProgressWidth() string {
	return strconv.FormatFloat(v.Progress(), 'f', -1, 64) + "%"
}

// SelectedCorrect reports whether the selected option is correct.
// It is false when nothing is selected.
func (v View) SelectedCorrect() bool {
	return v.Question != nil && v.Selected != "" && v.Question.IsCorrect(v.Selected)
}
