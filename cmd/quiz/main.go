package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/netquiz/internal/config"
	"github.com/aliskhannn/netquiz/internal/dataset"
	"github.com/aliskhannn/netquiz/internal/delivery/terminal"
	"github.com/aliskhannn/netquiz/internal/logger"
	"github.com/aliskhannn/netquiz/internal/service"
)

func main() {
	logPath := flag.String("log", "quiz.log", "log file path")
	questions := flag.String("questions", "", "path to a JSON dataset, overrides questions.path")
	flag.Parse()

	if err := run(*logPath, *questions); err != nil {
		fmt.Fprintf(os.Stderr, "quiz: %v\n", err)
		os.Exit(1)
	}
}

func run(logPath, questionsPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if questionsPath != "" {
		cfg.Questions.Source = config.SourceFile
		cfg.Questions.Path = questionsPath
	}

	lg, err := logger.NewFile(cfg, logPath)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := dataset.LoadPool(ctx, cfg, lg)
	if err != nil {
		lg.Error("invalid question dataset", zap.Error(err))
		return err
	}

	quizService, err := service.NewQuizService(pool, service.NewQuestionSelector(nil))
	if err != nil {
		return err
	}

	app := terminal.NewApp(quizService, os.Stdin, os.Stdout, lg)
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
