package telegram

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/netquiz/internal/service"
)

// textKeys maps chat shortcuts that have no single-key equivalent.
var textKeys = map[string]string{
	"<":    service.KeyLeft,
	"←":    service.KeyLeft,
	"prev": service.KeyLeft,
	">":    service.KeyEnter,
	"→":    service.KeyEnter,
	"next": service.KeyEnter,
}

// keyFromText converts a text message into a key press, or "" if it is not one.
func keyFromText(text string) string {
	text = strings.TrimSpace(text)
	if _, ok := service.AnswerKeyIndex(text); ok {
		return text
	}
	if key, ok := textKeys[strings.ToLower(text)]; ok {
		return key
	}
	return ""
}

func (h *Handler) handleCommand(command string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch command {
		case "start", "help":
			if err := h.send(newHTMLMessage(chatID, msgWelcome)); err != nil {
				return err
			}
			return h.showQuiz(chatID, h.sessions.Mount(chatID))

		case "quiz":
			return h.showQuiz(chatID, h.sessions.Mount(chatID))

		case "next":
			return h.applyAndShow(chatID, service.ActionNext)

		case "prev":
			return h.applyAndShow(chatID, service.ActionPrevious)

		case "restart":
			return h.applyAndShow(chatID, service.ActionRestart)

		case "stats":
			out, ok := h.sessions.Peek(chatID)
			if !ok {
				return h.send(newHTMLMessage(chatID, esc(msgNoQuiz)))
			}
			return h.send(newHTMLMessage(chatID, renderStats(out.View)))

		default:
			return h.send(newHTMLMessage(chatID, esc(msgUnknownCommand)))
		}
	}
}

// handleText treats a plain message as a key press on the chat's session.
func (h *Handler) handleText(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		key := keyFromText(text)
		if key == "" {
			return h.send(newHTMLMessage(chatID, esc(msgUnknownInput)))
		}

		out := h.sessions.HandleKey(chatID, key)
		if out.Action == service.ActionNone && !out.Mounted {
			h.logger.Debug("key ignored",
				zap.Int64("chat_id", chatID),
				zap.String("key", key),
			)
			return nil
		}

		return h.showQuiz(chatID, out)
	}
}

// applyAndShow applies a navigation command; guarded no-ops send nothing.
func (h *Handler) applyAndShow(chatID int64, action service.Action) error {
	out := h.sessions.Apply(chatID, action, 0)
	if out.Action == service.ActionNone && !out.Mounted {
		return nil
	}
	return h.showQuiz(chatID, out)
}

// showQuiz sends a fresh quiz message and retires the keyboard of the previous one.
func (h *Handler) showQuiz(chatID int64, out service.Outcome) error {
	msg := newHTMLMessage(chatID, renderQuiz(out.View))
	msg.ReplyMarkup = buildQuizKeyboard(out.View)

	sent, err := h.bot.Send(msg)
	if err != nil {
		return err
	}

	prev, hadPrev := h.messages.UpsertAndGetPrev(chatID, sent.MessageID)
	if hadPrev && prev.MessageID != sent.MessageID {
		if _, err := h.bot.Request(clearKeyboard(chatID, prev.MessageID)); err != nil {
			h.logger.Debug("failed to clear old quiz keyboard",
				zap.Int64("chat_id", chatID),
				zap.Int("message_id", prev.MessageID),
				zap.Error(err),
			)
		}
	}

	return nil
}
