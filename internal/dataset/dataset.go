// Package dataset opens the configured question source.
package dataset

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/netquiz/internal/config"
	"github.com/aliskhannn/netquiz/internal/domain/entities"
	"github.com/aliskhannn/netquiz/internal/infra/postgres"
	pgrepository "github.com/aliskhannn/netquiz/internal/infra/postgres/repository"
	"github.com/aliskhannn/netquiz/internal/repository"
	"github.com/aliskhannn/netquiz/internal/service"
)

// Open returns the question source selected by cfg and a function releasing its resources.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.QuestionSource, func(), error) {
	switch cfg.Questions.Source {
	case config.SourcePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}

		logger.Info("loading questions from postgres")
		return pgrepository.NewQuestionRepository(pool), pool.Close, nil

	case config.SourceFile:
		repo, err := repository.NewQuestionRepository(cfg.Questions.Path)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("loading questions from file", zap.String("path", cfg.Questions.Path))
		return repo, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownQuestionSource, cfg.Questions.Source)
	}
}

// LoadPool opens the configured source, reads and validates the question pool.
func LoadPool(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]*entities.Question, error) {
	src, closeFn, err := Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	pool, err := service.LoadPool(ctx, src, service.NewDatasetValidator())
	if err != nil {
		return nil, err
	}

	logger.Info("question pool loaded", zap.Int("size", len(pool)))
	return pool, nil
}
