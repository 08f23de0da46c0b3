// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Error messages.
const (
	msgInternalError  = "Something went wrong. Please try again later."
	msgUnknownCommand = "Unknown command. Available commands:\n\n/quiz - show the current question\n/next - next question\n/prev - previous question\n/restart - start over\n/stats - score and progress"
	msgUnknownInput   = "Answer with 1-4 or A-D, send > for the next question or < for the previous one."
)

const (
	msgTitle   = "Networking Quiz"
	msgWelcome = "<b>Networking Quiz</b>\n\n" +
		"Pick an answer with the buttons or send 1-4 / A-D.\n" +
		"After answering, press <b>Next ▶️</b> or send &gt;.\n" +
		"Send &lt; or press <b>◀️ Previous</b> to review earlier questions.\n" +
		"/restart starts over, /stats shows your score."
	msgLoading = "Loading question..."
	msgNoQuiz  = "No quiz in progress. Send /quiz to start one."
)

const progressBarLength = 20

// esc escapes plain text for HTML parse mode.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func bold(s string) string {
	return "<b>" + esc(s) + "</b>"
}

// buildProgressBar creates ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return fmt.Sprintf("[%s]", strings.Repeat("░", length))
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}
