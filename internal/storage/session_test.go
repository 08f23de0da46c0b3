package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

func TestSessionStorageUpdateCreatesOnce(t *testing.T) {
	s := NewSessionStorage()

	creates := 0
	create := func() *entities.Session {
		creates++
		return entities.NewSession()
	}

	if !s.Update(1, create, func(sess *entities.Session) { sess.Score = 5 }) {
		t.Fatal("first Update did not report creation")
	}
	if s.Update(1, create, func(sess *entities.Session) {
		if sess.Score != 5 {
			t.Fatalf("Score = %d, want the stored session", sess.Score)
		}
	}) {
		t.Fatal("second Update reported creation")
	}
	if creates != 1 {
		t.Fatalf("create called %d times, want 1", creates)
	}
	if !s.Exists(1) || s.Exists(2) {
		t.Fatal("Exists reports wrong sessions")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestSessionStorageEvictIdle(t *testing.T) {
	s := NewSessionStorage()
	now := time.Now()

	for chatID, updated := range map[int64]time.Time{
		1: now.Add(-2 * time.Hour),
		2: now.Add(-time.Minute),
		3: now.Add(-3 * time.Hour),
	} {
		s.Update(chatID, entities.NewSession, func(sess *entities.Session) {
			sess.UpdatedAt = updated
		})
	}

	evicted := s.EvictIdle(now.Add(-time.Hour))
	if len(evicted) != 2 {
		t.Fatalf("evicted %v, want chats 1 and 3", evicted)
	}
	if s.Len() != 1 || !s.Exists(2) {
		t.Fatal("active session was evicted")
	}
}

func TestSessionStorageConcurrentUpdates(t *testing.T) {
	s := NewSessionStorage()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(1, entities.NewSession, func(sess *entities.Session) {
				sess.AnsweredCount++
			})
		}()
	}
	wg.Wait()

	s.Update(1, entities.NewSession, func(sess *entities.Session) {
		if sess.AnsweredCount != 50 {
			t.Fatalf("AnsweredCount = %d, want 50", sess.AnsweredCount)
		}
	})
}
