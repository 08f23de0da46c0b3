package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

// Dataset configuration errors. Any of them makes the quiz unusable.
var (
	ErrEmptyPool            = errors.New("question pool is empty")
	ErrDuplicateQuestion    = errors.New("duplicate question name")
	ErrInvalidQuestion      = errors.New("invalid question")
	ErrInvalidOptions       = errors.New("invalid question options")
	ErrCorrectAnswerMissing = errors.New("correct answer is not among the options")
)

// DatasetValidator checks a question dataset before it is used as a pool.
type DatasetValidator struct {
	optionsPerQuestion int
}

// NewDatasetValidator creates a new DatasetValidator.
func NewDatasetValidator() *DatasetValidator {
	return &DatasetValidator{
		optionsPerQuestion: entities.OptionsPerQuestion,
	}
}

// Validate returns the first problem found in questions, wrapped with the
// offending question's position and name.
func (v *DatasetValidator) Validate(questions []*entities.Question) error {
	if len(questions) == 0 {
		return ErrEmptyPool
	}

	names := make(map[string]struct{}, len(questions))
	for i, q := range questions {
		if q == nil {
			return fmt.Errorf("question #%d: %w", i+1, ErrInvalidQuestion)
		}
		if err := v.validateQuestion(q); err != nil {
			return fmt.Errorf("question #%d %q: %w", i+1, q.Name, err)
		}
		if _, ok := names[q.Name]; ok {
			return fmt.Errorf("question #%d %q: %w", i+1, q.Name, ErrDuplicateQuestion)
		}
		names[q.Name] = struct{}{}
	}

	return nil
}

func (v *DatasetValidator) validateQuestion(q *entities.Question) error {
	if strings.TrimSpace(q.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidQuestion)
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}

	if len(q.Options) != v.optionsPerQuestion {
		return fmt.Errorf("%w: expected %d options, got %d", ErrInvalidOptions, v.optionsPerQuestion, len(q.Options))
	}

	seen := make(map[string]struct{}, len(q.Options))
	for _, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("%w: empty option", ErrInvalidOptions)
		}
		if _, ok := seen[o]; ok {
			return fmt.Errorf("%w: repeated option %q", ErrInvalidOptions, o)
		}
		seen[o] = struct{}{}
	}

	if !q.HasOption(q.CorrectAnswer) {
		return ErrCorrectAnswerMissing
	}

	return nil
}
