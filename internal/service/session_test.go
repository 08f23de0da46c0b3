package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/netquiz/internal/storage"
)

func newTestSessionService(ttl time.Duration) (*SessionService, *storage.SessionStorage) {
	store := storage.NewSessionStorage()
	quiz := newTestQuiz(twoQuestionPool(), 0, 0, 0, 0)
	return NewSessionService(quiz, store, ttl, "@every 1m", zap.NewNop()), store
}

func TestSessionServiceMount(t *testing.T) {
	s, store := newTestSessionService(time.Hour)

	out := s.Mount(1)
	if !out.Mounted || out.View.Question == nil {
		t.Fatalf("first Mount = %+v, want a mounted session with a question", out)
	}
	if out.Action != ActionNone {
		t.Fatalf("Mount action = %v, want none", out.Action)
	}

	if again := s.Mount(1); again.Mounted {
		t.Fatal("second Mount created a new session")
	}
	if store.Len() != 1 {
		t.Fatalf("live sessions = %d, want 1", store.Len())
	}
}

func TestSessionServiceApply(t *testing.T) {
	s, _ := newTestSessionService(time.Hour)
	s.Mount(7)

	out := s.Apply(7, ActionNext, 0)
	if out.Action != ActionNone {
		t.Fatalf("Next without selection = %v, want none", out.Action)
	}

	out = s.Apply(7, ActionAnswer, 0)
	if out.Action != ActionAnswer || out.View.Answered != 1 {
		t.Fatalf("Answer = %+v", out)
	}

	out = s.HandleKey(7, KeyEnter)
	if out.Action != ActionNext || out.View.Cursor != 1 {
		t.Fatalf("Enter = action %v cursor %d, want next/1", out.Action, out.View.Cursor)
	}
}

func TestSessionServiceApplyAtStaleCursor(t *testing.T) {
	s, _ := newTestSessionService(time.Hour)
	s.Mount(3)
	s.Apply(3, ActionAnswer, 0)
	s.Apply(3, ActionNext, 0)

	// A button rendered for cursor 0 must not answer the question at cursor 1.
	out := s.ApplyAt(3, 0, ActionAnswer, 1)
	if out.Action != ActionNone || out.View.Answered != 1 {
		t.Fatalf("stale answer applied: %+v", out)
	}

	out = s.ApplyAt(3, 1, ActionAnswer, 1)
	if out.Action != ActionAnswer || out.View.Answered != 2 {
		t.Fatalf("current answer not applied: %+v", out)
	}

	// Restart is honoured regardless of the cursor.
	out = s.ApplyAt(3, 0, ActionRestart, 0)
	if out.Action != ActionRestart || out.View.Answered != 0 {
		t.Fatalf("restart not applied: %+v", out)
	}
}

func TestSessionServiceSweepIdle(t *testing.T) {
	s, store := newTestSessionService(time.Minute)

	var evicted []int64
	s.SetEvictHook(func(chatID int64) { evicted = append(evicted, chatID) })

	s.Mount(1)
	s.Mount(2)

	if n := s.SweepIdle(time.Now()); n != 0 {
		t.Fatalf("fresh sessions evicted: %d", n)
	}

	if n := s.SweepIdle(time.Now().Add(2 * time.Minute)); n != 2 {
		t.Fatalf("SweepIdle() = %d, want 2", n)
	}
	if store.Len() != 0 || len(evicted) != 2 {
		t.Fatalf("live=%d hooks=%d, want 0/2", store.Len(), len(evicted))
	}
}

func TestSessionServiceStartDisabled(t *testing.T) {
	s, _ := newTestSessionService(0)

	done := make(chan struct{})
	go func() {
		s.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start with eviction disabled did not return")
	}
}

func TestSessionServiceStartStopsWithContext(t *testing.T) {
	s, _ := newTestSessionService(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancellation")
	}
}

func TestSessionServicePeek(t *testing.T) {
	s, store := newTestSessionService(time.Hour)

	if _, ok := s.Peek(5); ok {
		t.Fatal("Peek reported a session for an unknown chat")
	}
	if store.Len() != 0 {
		t.Fatalf("Peek mounted a session: live = %d", store.Len())
	}

	s.Mount(5)
	s.Apply(5, ActionAnswer, 0)

	out, ok := s.Peek(5)
	if !ok || out.Mounted || out.View.Answered != 1 {
		t.Fatalf("Peek = %+v, %v", out, ok)
	}
}

func TestSessionServiceRestartMountsOnce(t *testing.T) {
	store := storage.NewSessionStorage()
	rng := &seqRand{vals: []int{1, 0}}
	quiz := newTestQuiz(twoQuestionPool())
	quiz.selector = NewQuestionSelector(rng)
	s := NewSessionService(quiz, store, time.Hour, "@every 1m", zap.NewNop())

	out := s.Apply(9, ActionRestart, 0)
	if !out.Mounted || out.Action != ActionNone {
		t.Fatalf("restart on a new chat = %+v, want mounted without a second restart", out)
	}
	if out.View.Question == nil || out.View.Question.Name != "Q2" {
		t.Fatalf("first question = %v, want the first draw Q2", out.View.Question)
	}
	if len(rng.vals) != 1 {
		t.Fatalf("selector drew %d times, want 1", 2-len(rng.vals))
	}

	out = s.ApplyAt(10, 0, ActionRestart, 0)
	if !out.Mounted || out.Action != ActionNone || len(rng.vals) != 0 {
		t.Fatalf("button restart on a new chat = %+v, remaining draws %d", out, len(rng.vals))
	}

	// On a live session restart still applies.
	if out := s.Apply(9, ActionRestart, 0); out.Action != ActionRestart || out.Mounted {
		t.Fatalf("restart on a live session = %+v", out)
	}
}
