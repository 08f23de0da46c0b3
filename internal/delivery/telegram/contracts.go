package telegram

import (
	"github.com/aliskhannn/netquiz/internal/service"
	"github.com/aliskhannn/netquiz/internal/storage"
)

type SessionService interface {
	Mount(chatID int64) service.Outcome
	Peek(chatID int64) (service.Outcome, bool)
	Apply(chatID int64, action service.Action, idx int) service.Outcome
	ApplyAt(chatID int64, cursor int, action service.Action, idx int) service.Outcome
	HandleKey(chatID int64, key string) service.Outcome
}

type MessageStorage interface {
	UpsertAndGetPrev(chatID int64, messageID int) (storage.QuizMessage, bool)
	IsCurrent(chatID int64, messageID int) bool
	Delete(chatID int64)
}
