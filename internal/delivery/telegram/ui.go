package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

// buildQuizKeyboard builds the inline keyboard for the current quiz view.
// Once the answer is revealed the option buttons stay visible but do nothing.
func buildQuizKeyboard(v entities.View) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if q := v.Question; q != nil {
		for i, option := range q.Options {
			data := buildQuizAnswerCallback(v.Cursor, i)
			if v.Selected != "" {
				data = buildQuizNoopCallback(v.Cursor)
			}
			button := tgbotapi.NewInlineKeyboardButtonData(optionButtonText(v, i, option), data)
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
		}
	}

	var nav []tgbotapi.InlineKeyboardButton
	if v.CanRetreat {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildQuizPrevCallback(v.Cursor)))
	}
	if v.CanAdvance {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildQuizNextCallback(v.Cursor)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 Restart Quiz", buildQuizRestartCallback(v.Cursor)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// optionButtonText renders "A. option" with a result mark once the answer is revealed.
func optionButtonText(v entities.View, i int, option string) string {
	text := entities.OptionLetter(i) + ". " + option
	if v.Selected == "" {
		return text
	}

	switch {
	case v.Question.IsCorrect(option):
		return text + " ✓"
	case option == v.Selected:
		return text + " ✗"
	default:
		return text
	}
}
