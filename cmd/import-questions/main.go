package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/netquiz/internal/config"
	"github.com/aliskhannn/netquiz/internal/infra/postgres"
	"github.com/aliskhannn/netquiz/internal/logger"
	"github.com/aliskhannn/netquiz/internal/repository"
	"github.com/aliskhannn/netquiz/internal/service"
)

func main() {
	path := flag.String("file", "", "JSON dataset to import, defaults to questions.path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *path == "" {
		*path = cfg.Questions.Path
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		lg.Fatal("database is not configured", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	src, err := repository.NewQuestionRepository(*path)
	if err != nil {
		lg.Fatal("failed to read dataset", zap.String("path", *path), zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	importService := service.NewImportService(
		postgres.NewTransactor(pool, pgx.TxOptions{IsoLevel: pgx.Serializable}),
		service.NewDatasetValidator(),
		lg,
	)

	n, err := importService.Import(ctx, src)
	if err != nil {
		lg.Fatal("import failed", zap.Error(err))
	}

	fmt.Printf("Imported %d questions from %s\n", n, *path)
}
