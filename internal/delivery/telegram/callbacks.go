package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/netquiz/internal/service"
)

const msgOutdated = "This quiz message is outdated."

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	notice := ""
	defer func() {
		// Remove the user's "clock".
		answer := tgbotapi.NewCallback(cb.ID, notice)
		if _, err := h.bot.Request(answer); err != nil {
			h.logger.Debug("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil || !strings.HasPrefix(cb.Data, quizCallback) {
		return
	}

	cmd, err := parseQuizCommand(decodeCallback(cb.Data))
	if err != nil {
		h.logger.Warn("invalid quiz callback", zap.String("data", cb.Data))
		return
	}

	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID

	if !h.messages.IsCurrent(chatID, msgID) {
		if cmd.Action == service.ActionRestart {
			// Restart works from any message, including ones left over from an evicted session.
			_ = h.withErrorHandling(func(ctx context.Context, chatID int64) error {
				return h.showQuiz(chatID, h.sessions.Apply(chatID, service.ActionRestart, 0))
			})(ctx, chatID)
			return
		}
		notice = msgOutdated
		return
	}

	if cmd.Action == service.ActionNone {
		return
	}

	out := h.sessions.ApplyAt(chatID, cmd.Cursor, cmd.Action, cmd.Index)
	if out.Action == service.ActionNone && !out.Mounted {
		return
	}

	edit := newHTMLEdit(chatID, msgID, renderQuiz(out.View), buildQuizKeyboard(out.View))
	_ = h.send(edit)
}
