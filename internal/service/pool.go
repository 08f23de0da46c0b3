package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

// QuestionSource loads the whole question dataset.
type QuestionSource interface {
	GetAll(ctx context.Context) ([]*entities.Question, error)
}

// LoadPool reads the dataset from src and validates it.
// Any error returned here is a configuration error: the quiz must not start.
func LoadPool(ctx context.Context, src QuestionSource, v *DatasetValidator) ([]*entities.Question, error) {
	questions, err := src.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	if err = v.Validate(questions); err != nil {
		return nil, fmt.Errorf("validate questions: %w", err)
	}

	// Callers get their own slice header; the questions themselves are shared and immutable.
	pool := make([]*entities.Question, len(questions))
	copy(pool, questions)

	return pool, nil
}
