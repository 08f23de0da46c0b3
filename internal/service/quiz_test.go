package service

import (
	"errors"
	"testing"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

func TestNewQuizServiceEmptyPool(t *testing.T) {
	if _, err := NewQuizService(nil, nil); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("err = %v, want ErrEmptyPool", err)
	}
}

func TestQuizTwoQuestionWalkthrough(t *testing.T) {
	s := newTestQuiz(twoQuestionPool(), 0, 0, 1)
	sess := entities.NewSession()

	if !s.Restart(sess) {
		t.Fatal("Restart returned false")
	}
	if got := sess.Current().Name; got != "Q1" {
		t.Fatalf("first question = %q, want Q1", got)
	}

	if !s.Answer(sess, "A") {
		t.Fatal("Answer(A) returned false")
	}
	if sess.Score != 1 || sess.AnsweredCount != 1 {
		t.Fatalf("score=%d answered=%d, want 1/1", sess.Score, sess.AnsweredCount)
	}

	if !s.Advance(sess) {
		t.Fatal("Advance returned false")
	}
	if got := sess.Current().Name; got != "Q2" {
		t.Fatalf("second question = %q, want Q2", got)
	}

	s.Answer(sess, "C")
	if sess.Score != 1 || sess.AnsweredCount != 2 {
		t.Fatalf("score=%d answered=%d, want 1/2", sess.Score, sess.AnsweredCount)
	}

	if !s.Retreat(sess) {
		t.Fatal("Retreat returned false")
	}
	if got := sess.Current().Name; got != "Q1" {
		t.Fatalf("after retreat question = %q, want Q1", got)
	}
	if sess.Selected != "A" || !sess.Revealed {
		t.Fatalf("replayed selection = %q revealed=%v, want A/true", sess.Selected, sess.Revealed)
	}

	// Advancing from behind the end draws fresh instead of replaying Q2.
	if !s.Advance(sess) {
		t.Fatal("Advance from cursor 0 returned false")
	}
	if len(sess.History) != 3 {
		t.Fatalf("len(History) = %d, want 3", len(sess.History))
	}
	if sess.Cursor != 2 {
		t.Fatalf("Cursor = %d, want 2", sess.Cursor)
	}
	if len(sess.Seen) != 1 {
		t.Fatalf("seen set = %v, want reset to the drawn question", sess.Seen)
	}
	if sess.HasSelection() || sess.Revealed {
		t.Fatal("fresh question must start without a selection")
	}
}

func TestQuizAnswerGuards(t *testing.T) {
	s := newTestQuiz(twoQuestionPool())

	t.Run("no question shown", func(t *testing.T) {
		sess := entities.NewSession()
		if s.Answer(sess, "A") {
			t.Fatal("Answer before first question returned true")
		}
		if sess.AnsweredCount != 0 {
			t.Fatalf("answered = %d, want 0", sess.AnsweredCount)
		}
	})

	t.Run("second answer ignored", func(t *testing.T) {
		sess := s.Start()
		correct := sess.Current().CorrectAnswer
		s.Answer(sess, correct)
		if s.Answer(sess, "D") {
			t.Fatal("second Answer returned true")
		}
		if sess.Selected != correct || sess.AnsweredCount != 1 || sess.Score != 1 {
			t.Fatalf("state changed by second answer: %+v", sess)
		}
	})

	t.Run("unknown option ignored", func(t *testing.T) {
		sess := s.Start()
		if s.Answer(sess, "Z") {
			t.Fatal("Answer with foreign option returned true")
		}
		if sess.HasSelection() {
			t.Fatal("foreign option was selected")
		}
	})

	t.Run("answer by index", func(t *testing.T) {
		sess := s.Start()
		if !s.AnswerIndex(sess, 3) {
			t.Fatal("AnswerIndex(3) returned false")
		}
		if sess.Selected != "D" {
			t.Fatalf("Selected = %q, want D", sess.Selected)
		}
		if s.AnswerIndex(entities.NewSession(), 0) {
			t.Fatal("AnswerIndex without question returned true")
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		sess := s.Start()
		if s.AnswerIndex(sess, 4) || s.AnswerIndex(sess, -1) {
			t.Fatal("AnswerIndex out of range returned true")
		}
	})
}

func TestQuizNextRequiresSelection(t *testing.T) {
	s := newTestQuiz(twoQuestionPool())
	sess := s.Start()

	if s.Next(sess) {
		t.Fatal("Next without selection returned true")
	}
	if len(sess.History) != 1 {
		t.Fatalf("len(History) = %d, want 1", len(sess.History))
	}

	s.AnswerIndex(sess, 0)
	if !s.Next(sess) {
		t.Fatal("Next after selection returned false")
	}
	if len(sess.History) != 2 || sess.Cursor != 1 {
		t.Fatalf("history=%d cursor=%d, want 2/1", len(sess.History), sess.Cursor)
	}

	// From the initial state Next behaves like the first draw.
	fresh := entities.NewSession()
	if !s.Next(fresh) || fresh.Current() == nil {
		t.Fatal("Next from initial state did not show a question")
	}
}

func TestQuizRetreatGuards(t *testing.T) {
	s := newTestQuiz(twoQuestionPool())

	if s.Retreat(entities.NewSession()) {
		t.Fatal("Retreat before first question returned true")
	}

	sess := s.Start()
	if s.Retreat(sess) {
		t.Fatal("Retreat at cursor 0 returned true")
	}

	// Unanswered question is replayed without a selection.
	s.Advance(sess)
	s.AnswerIndex(sess, 1)
	s.Retreat(sess)
	if sess.HasSelection() || sess.Revealed {
		t.Fatalf("unanswered question replayed with selection %q", sess.Selected)
	}
	if sess.AnsweredCount != 1 {
		t.Fatalf("retreat changed answered count to %d", sess.AnsweredCount)
	}
}

func TestQuizRetreatAllowsAnsweringSkippedQuestion(t *testing.T) {
	s := newTestQuiz(twoQuestionPool(), 0, 0)
	sess := s.Start()
	s.Advance(sess)
	s.Retreat(sess)

	if !s.Answer(sess, "A") {
		t.Fatal("Answer on revisited unanswered question returned false")
	}
	if sess.Score != 1 || sess.Answers["Q1"] != "A" {
		t.Fatalf("score=%d answers=%v", sess.Score, sess.Answers)
	}
}

func TestQuizRestart(t *testing.T) {
	s := newTestQuiz(twoQuestionPool())
	sess := s.Start()
	s.AnswerIndex(sess, 0)
	s.Next(sess)
	s.AnswerIndex(sess, 1)

	if !s.Restart(sess) {
		t.Fatal("Restart returned false")
	}
	if sess.Score != 0 || sess.AnsweredCount != 0 || len(sess.Answers) != 0 {
		t.Fatalf("counters not reset: %+v", sess)
	}
	if len(sess.History) != 1 || sess.Cursor != 0 || len(sess.Seen) != 1 {
		t.Fatalf("history=%d cursor=%d seen=%d, want 1/0/1", len(sess.History), sess.Cursor, len(sess.Seen))
	}
}

func TestQuizInvariantsHoldOverRandomWalk(t *testing.T) {
	pool := []*entities.Question{
		newQuestion("Q1", "A"),
		newQuestion("Q2", "B"),
		newQuestion("Q3", "C"),
	}
	s := newTestQuiz(pool, 2, 1, 0, 1, 0, 0, 2, 1)
	sess := s.Start()

	steps := []func(){
		func() { s.AnswerIndex(sess, 0) },
		func() { s.Next(sess) },
		func() { s.AnswerIndex(sess, 1) },
		func() { s.Retreat(sess) },
		func() { s.Advance(sess) },
		func() { s.AnswerIndex(sess, 2) },
		func() { s.Next(sess) },
		func() { s.Retreat(sess) },
		func() { s.Retreat(sess) },
		func() { s.Advance(sess) },
		func() { s.AnswerIndex(sess, 0) },
		func() { s.Next(sess) },
	}

	for i, step := range steps {
		step()
		if sess.Score > sess.AnsweredCount {
			t.Fatalf("step %d: score %d > answered %d", i, sess.Score, sess.AnsweredCount)
		}
		if sess.Cursor < -1 || sess.Cursor >= len(sess.History) {
			t.Fatalf("step %d: cursor %d out of range for history %d", i, sess.Cursor, len(sess.History))
		}
		if len(sess.Seen) < 1 || len(sess.Seen) > len(pool) {
			t.Fatalf("step %d: seen size %d", i, len(sess.Seen))
		}
		if sess.Current() == nil {
			t.Fatalf("step %d: no question shown", i)
		}
	}
}

func TestAccuracy(t *testing.T) {
	cases := []struct {
		score, answered, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13},
		{3, 3, 100},
		{0, 5, 0},
	}
	for _, tc := range cases {
		if got := Accuracy(tc.score, tc.answered); got != tc.want {
			t.Errorf("Accuracy(%d, %d) = %d, want %d", tc.score, tc.answered, got, tc.want)
		}
	}
}

func TestQuizView(t *testing.T) {
	s := newTestQuiz(twoQuestionPool(), 0, 0)
	sess := s.Start()

	v := s.View(sess)
	if v.Question == nil || v.Question.Name != "Q1" {
		t.Fatalf("view question = %v, want Q1", v.Question)
	}
	if v.ProgressWidth() != "50%" {
		t.Fatalf("ProgressWidth = %q, want 50%%", v.ProgressWidth())
	}
	if v.CanAdvance || v.CanRetreat || v.Previous != 0 {
		t.Fatalf("unexpected navigation flags: %+v", v)
	}

	s.Answer(sess, "B")
	s.Next(sess)
	v = s.View(sess)
	if !v.CanRetreat || v.Previous != 1 {
		t.Fatalf("CanRetreat=%v Previous=%d, want true/1", v.CanRetreat, v.Previous)
	}
	if v.Number != 2 {
		t.Fatalf("Number = %d, want 2", v.Number)
	}
	if v.Accuracy != 0 || v.Answered != 1 {
		t.Fatalf("accuracy=%d answered=%d, want 0/1", v.Accuracy, v.Answered)
	}

	s.Retreat(sess)
	v = s.View(sess)
	if !v.CanAdvance || v.SelectedCorrect() {
		t.Fatalf("replayed wrong answer: CanAdvance=%v SelectedCorrect=%v", v.CanAdvance, v.SelectedCorrect())
	}
}

func TestQuizNavigationKeepsHistoryAndReplay(t *testing.T) {
	tests := []struct {
		name        string
		vals        []int
		answerFirst bool
	}{
		{"answered entry, new round repeats it", []int{0, 0, 0}, true},
		{"answered entry, new round draws the other", []int{0, 0, 1}, true},
		{"answered entry drawn second in pool", []int{1, 0, 1}, true},
		{"skipped entry", []int{0, 0, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestQuiz(twoQuestionPool(), tt.vals...)
			sess := s.Start()
			if tt.answerFirst {
				s.AnswerIndex(sess, 0)
			}
			s.Advance(sess)
			s.AnswerIndex(sess, 2)

			prefix := append([]*entities.Question(nil), sess.History...)

			s.Retreat(sess)
			first := s.View(sess)

			s.Advance(sess)
			if len(sess.History) != len(prefix)+1 {
				t.Fatalf("len(History) = %d, want %d", len(sess.History), len(prefix)+1)
			}
			for i, q := range prefix {
				if sess.History[i] != q {
					t.Fatalf("History[%d] = %q, want %q", i, sess.History[i].Name, q.Name)
				}
			}

			s.Retreat(sess)
			s.Retreat(sess)
			again := s.View(sess)

			if again.Cursor != 0 || again.Question != first.Question {
				t.Fatalf("replayed cursor %d question %q, want 0 %q", again.Cursor, again.Question.Name, first.Question.Name)
			}
			if again.Selected != first.Selected || again.Revealed != first.Revealed {
				t.Fatalf("replay differs: selected %q/%q revealed %v/%v",
					again.Selected, first.Selected, again.Revealed, first.Revealed)
			}
			if again.Score != first.Score || again.Answered != first.Answered {
				t.Fatalf("replay changed counters: %d/%d, want %d/%d",
					again.Score, again.Answered, first.Score, first.Answered)
			}
			if tt.answerFirst != (again.Selected != "") {
				t.Fatalf("Selected = %q, answered = %v", again.Selected, tt.answerFirst)
			}
		})
	}
}

func TestQuizAdvanceAcrossRounds(t *testing.T) {
	pool := []*entities.Question{
		newQuestion("Q1", "A"),
		newQuestion("Q2", "A"),
		newQuestion("Q3", "A"),
	}
	s := newTestQuiz(pool, 2, 1, 0, 1, 0, 0, 2, 2, 1, 0)
	sess := s.Start()

	if sess.Round != 1 || len(sess.Seen) != 1 {
		t.Fatalf("after start round=%d seen=%d, want 1/1", sess.Round, len(sess.Seen))
	}

	for i := 0; i < 3*len(pool)+1; i++ {
		before, round := len(sess.Seen), sess.Round
		s.Advance(sess)

		if before == len(pool) {
			if len(sess.Seen) != 1 {
				t.Fatalf("step %d: seen = %d after a full round, want 1", i, len(sess.Seen))
			}
			if sess.Round != round+1 {
				t.Fatalf("step %d: round = %d, want %d", i, sess.Round, round+1)
			}
			continue
		}
		if len(sess.Seen) != before+1 {
			t.Fatalf("step %d: seen = %d, want %d", i, len(sess.Seen), before+1)
		}
		if sess.Round != round {
			t.Fatalf("step %d: round changed mid-round to %d", i, sess.Round)
		}
	}

	if got := s.View(sess).Round; got != 4 {
		t.Fatalf("View().Round = %d, want 4", got)
	}
	s.Restart(sess)
	if sess.Round != 1 {
		t.Fatalf("Round after restart = %d, want 1", sess.Round)
	}
}
