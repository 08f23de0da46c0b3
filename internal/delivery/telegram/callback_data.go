package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aliskhannn/netquiz/internal/service"
)

var errInvalidCallback = errors.New("invalid callback data")

// Callback action constants.
const (
	actionQuiz = "quiz"
)

// Quiz sub-actions.
const (
	quizAnswer   = "answer"
	quizNext     = "next"
	quizPrev     = "prev"
	quizRestart  = "restart"
	quizNoop     = "noop"
	quizCallback = actionQuiz + ":"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// quizCommand is a decoded quiz button press.
type quizCommand struct {
	Action service.Action
	Cursor int // history position the button was rendered for
	Index  int // option index for answers
}

// parseQuizCommand converts quiz callback data into a quizCommand.
// Layout: quiz:<sub-action>:<cursor>[:<option index>].
func parseQuizCommand(cd callbackData) (quizCommand, error) {
	if cd.Action != actionQuiz || len(cd.Params) < 2 {
		return quizCommand{}, errInvalidCallback
	}

	cursor, err := strconv.Atoi(cd.Params[1])
	if err != nil || cursor < 0 {
		return quizCommand{}, errInvalidCallback
	}

	cmd := quizCommand{Cursor: cursor}
	switch cd.Params[0] {
	case quizAnswer:
		if len(cd.Params) != 3 {
			return quizCommand{}, errInvalidCallback
		}
		idx, err := strconv.Atoi(cd.Params[2])
		if err != nil || idx < 0 {
			return quizCommand{}, errInvalidCallback
		}
		cmd.Action = service.ActionAnswer
		cmd.Index = idx
	case quizNext:
		cmd.Action = service.ActionNext
	case quizPrev:
		cmd.Action = service.ActionPrevious
	case quizRestart:
		cmd.Action = service.ActionRestart
	case quizNoop:
		cmd.Action = service.ActionNone
	default:
		return quizCommand{}, errInvalidCallback
	}

	return cmd, nil
}

func buildQuizCallback(subAction string, cursor int, params ...string) string {
	p := []string{subAction, strconv.Itoa(cursor)}
	p = append(p, params...)
	return callbackData{
		Action: actionQuiz,
		Params: p,
	}.encode()
}

// buildQuizAnswerCallback builds callback data for answering the question at cursor.
func buildQuizAnswerCallback(cursor, answerIndex int) string {
	return buildQuizCallback(quizAnswer, cursor, strconv.Itoa(answerIndex))
}

func buildQuizNextCallback(cursor int) string {
	return buildQuizCallback(quizNext, cursor)
}

func buildQuizPrevCallback(cursor int) string {
	return buildQuizCallback(quizPrev, cursor)
}

func buildQuizRestartCallback(cursor int) string {
	return buildQuizCallback(quizRestart, cursor)
}

// buildQuizNoopCallback is attached to buttons that only display state.
func buildQuizNoopCallback(cursor int) string {
	return buildQuizCallback(quizNoop, cursor)
}
