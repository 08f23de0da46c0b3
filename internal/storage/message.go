package storage

import (
	"sync"
	"time"
)

// QuizMessage identifies the chat message that currently renders a session.
type QuizMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// MessageStorage remembers the latest quiz message per chat so that
// button presses on older messages can be told apart.
type MessageStorage struct {
	mu       sync.RWMutex
	messages map[int64]QuizMessage
}

func NewMessageStorage() *MessageStorage {
	return &MessageStorage{
		messages: make(map[int64]QuizMessage),
	}
}

// Delete forgets the quiz message of chatID.
func (s *MessageStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, chatID)
}

// UpsertAndGetPrev stores messageID as the quiz message of chatID and
// returns the message it replaces.
func (s *MessageStorage) UpsertAndGetPrev(chatID int64, messageID int) (prev QuizMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[chatID]

	s.messages[chatID] = QuizMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    time.Now(),
	}

	return prev, hadPrev
}

// IsCurrent reports whether messageID is the latest quiz message of chatID.
func (s *MessageStorage) IsCurrent(chatID int64, messageID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[chatID]
	return ok && msg.MessageID == messageID
}
