package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

// SessionStorage provides in-memory storage for quiz sessions by chat ID.
// Sessions are only reachable through Update, so a session is never
// touched by two goroutines at once.
type SessionStorage struct {
	mu       sync.Mutex
	sessions map[int64]*entities.Session
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*entities.Session),
	}
}

// Update runs fn on the session of chatID while holding the storage lock.
// When the chat has no session yet, create is called to mount one;
// created reports whether that happened.
func (s *SessionStorage) Update(
	chatID int64,
	create func() *entities.Session,
	fn func(sess *entities.Session),
) (created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		sess = create()
		s.sessions[chatID] = sess
		created = true
	}

	fn(sess)
	return created
}

// Exists reports whether chatID has a live session.
func (s *SessionStorage) Exists(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[chatID]
	return ok
}

// EvictIdle removes sessions with no activity since before and returns their chat IDs.
func (s *SessionStorage) EvictIdle(before time.Time) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted []int64
	for chatID, sess := range s.sessions {
		if sess.IdleSince(before) {
			delete(s.sessions, chatID)
			evicted = append(evicted, chatID)
		}
	}
	return evicted
}

// Len returns the number of live sessions.
func (s *SessionStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}
