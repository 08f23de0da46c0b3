package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

// SessionStore keeps live sessions by chat ID.
type SessionStore interface {
	Update(chatID int64, create func() *entities.Session, fn func(sess *entities.Session)) bool
	Exists(chatID int64) bool
	EvictIdle(before time.Time) []int64
	Len() int
}

// Outcome describes the effect of one user input on a chat session.
type Outcome struct {
	View    entities.View
	Action  Action // action that changed the session, ActionNone for a no-op
	Mounted bool   // the session was created by this input
}

// SessionService binds quiz sessions to chats and expires idle ones.
type SessionService struct {
	quiz      *QuizService
	store     SessionStore
	idleTTL   time.Duration
	sweepSpec string
	onEvict   func(chatID int64)
	logger    *zap.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	quiz *QuizService,
	store SessionStore,
	idleTTL time.Duration,
	sweepSpec string,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		quiz:      quiz,
		store:     store,
		idleTTL:   idleTTL,
		sweepSpec: sweepSpec,
		logger:    logger,
	}
}

// SetEvictHook sets a callback invoked for every evicted chat.
func (s *SessionService) SetEvictHook(fn func(chatID int64)) {
	s.onEvict = fn
}

// Mount returns the view of chatID's session, creating the session if needed.
func (s *SessionService) Mount(chatID int64) Outcome {
	return s.update(chatID, func(_ *entities.Session, _ bool) Action {
		return ActionNone
	})
}

// Peek returns the view of chatID's live session without mounting one.
// It reports false when the chat has no session.
func (s *SessionService) Peek(chatID int64) (Outcome, bool) {
	if !s.store.Exists(chatID) {
		return Outcome{}, false
	}
	return s.Mount(chatID), true
}

// Apply performs action on chatID's session.
// A restart on a chat without a session only mounts it.
func (s *SessionService) Apply(chatID int64, action Action, idx int) Outcome {
	return s.update(chatID, func(sess *entities.Session, mounted bool) Action {
		if mounted && action == ActionRestart {
			return ActionNone
		}
		if s.quiz.Apply(sess, action, idx) {
			return action
		}
		return ActionNone
	})
}

// ApplyAt performs action only if the session cursor still equals cursor.
// Buttons rendered for an earlier position are ignored this way.
// Restart ignores the cursor and, like Apply, only mounts a missing session.
func (s *SessionService) ApplyAt(chatID int64, cursor int, action Action, idx int) Outcome {
	return s.update(chatID, func(sess *entities.Session, mounted bool) Action {
		if mounted && action == ActionRestart {
			return ActionNone
		}
		if action != ActionRestart && sess.Cursor != cursor {
			return ActionNone
		}
		if s.quiz.Apply(sess, action, idx) {
			return action
		}
		return ActionNone
	})
}

// HandleKey resolves a key press against chatID's live session and applies it.
func (s *SessionService) HandleKey(chatID int64, key string) Outcome {
	return s.update(chatID, func(sess *entities.Session, _ bool) Action {
		return s.quiz.HandleKey(sess, key)
	})
}

func (s *SessionService) update(chatID int64, fn func(sess *entities.Session, mounted bool) Action) Outcome {
	var (
		out      Outcome
		mounted  bool
		newRound bool
	)
	create := func() *entities.Session {
		mounted = true
		return s.quiz.Start()
	}
	out.Mounted = s.store.Update(chatID, create, func(sess *entities.Session) {
		round := sess.Round
		out.Action = fn(sess, mounted)
		out.View = s.quiz.View(sess)
		newRound = sess.Round > round && round > 0
	})

	if out.Mounted {
		s.logger.Info("quiz session mounted", zap.Int64("chat_id", chatID))
	}
	if out.Action != ActionNone {
		fields := []zap.Field{
			zap.Int64("chat_id", chatID),
			zap.Stringer("action", out.Action),
			zap.Int("score", out.View.Score),
			zap.Int("answered", out.View.Answered),
		}
		if out.View.Question != nil {
			fields = append(fields, zap.String("question", out.View.Question.Name))
		}
		s.logger.Debug("quiz session updated", fields...)
	}
	if newRound {
		s.logger.Debug("quiz round started",
			zap.Int64("chat_id", chatID),
			zap.Int("round", out.View.Round),
		)
	}

	return out
}

// SweepIdle evicts sessions idle for longer than the configured TTL.
func (s *SessionService) SweepIdle(now time.Time) int {
	evicted := s.store.EvictIdle(now.Add(-s.idleTTL))
	for _, chatID := range evicted {
		if s.onEvict != nil {
			s.onEvict(chatID)
		}
	}

	if len(evicted) > 0 {
		s.logger.Info("idle quiz sessions evicted",
			zap.Int("evicted", len(evicted)),
			zap.Int("live", s.store.Len()),
		)
	}

	return len(evicted)
}

// Start runs the idle-session sweep on the configured cron schedule until ctx is done.
func (s *SessionService) Start(ctx context.Context) {
	if s.idleTTL <= 0 {
		s.logger.Info("session eviction disabled")
		return
	}

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.sweepSpec, func() {
		s.SweepIdle(time.Now())
	})
	if err != nil {
		s.logger.Error("failed to add cron job",
			zap.String("spec", s.sweepSpec),
			zap.Error(err),
		)
		return
	}

	c.Start()
	s.logger.Info("session sweeper started",
		zap.String("spec", s.sweepSpec),
		zap.Duration("idle_ttl", s.idleTTL),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("session sweeper stopped")
}
