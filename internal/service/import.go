package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/netquiz/internal/infra/postgres/repository"
)

// Transactor runs a function inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// ImportService copies a validated dataset into the database.
type ImportService struct {
	tr        Transactor
	validator *DatasetValidator
	logger    *zap.Logger
}

func NewImportService(
	tr Transactor,
	validator *DatasetValidator,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		tr:        tr,
		validator: validator,
		logger:    logger,
	}
}

// Import validates the questions of src and replaces the stored dataset with them atomically.
func (s *ImportService) Import(ctx context.Context, src QuestionSource) (int, error) {
	questions, err := LoadPool(ctx, src, s.validator)
	if err != nil {
		return 0, err
	}

	var imported int
	err = s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		questionRepo := repository.NewQuestionRepository(tx)

		if err := questionRepo.EnsureSchema(ctx); err != nil {
			return err
		}

		n, err := questionRepo.ReplaceAll(ctx, questions)
		if err != nil {
			return err
		}
		imported = n

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import questions: %w", err)
	}

	s.logger.Info("questions imported", zap.Int("count", imported))

	return imported, nil
}
