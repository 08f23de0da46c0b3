package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/netquiz/internal/config"
	"github.com/aliskhannn/netquiz/internal/dataset"
	"github.com/aliskhannn/netquiz/internal/delivery/telegram"
	"github.com/aliskhannn/netquiz/internal/logger"
	"github.com/aliskhannn/netquiz/internal/service"
	"github.com/aliskhannn/netquiz/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	token, err := cfg.Token()
	if err != nil {
		lg.Fatal("telegram token is not configured", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The pool is validated before the bot connects, so a broken dataset never reaches a chat.
	pool, err := dataset.LoadPool(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("invalid question dataset", zap.Error(err))
	}

	quizService, err := service.NewQuizService(pool, service.NewQuestionSelector(nil))
	if err != nil {
		lg.Fatal("failed to create quiz service", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		lg.Fatal("failed to create telegram bot", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "quiz",
			Description: "Show the current question",
		},
		{
			Command:     "next",
			Description: "Next question",
		},
		{
			Command:     "prev",
			Description: "Previous question",
		},
		{
			Command:     "restart",
			Description: "Restart the quiz",
		},
		{
			Command:     "stats",
			Description: "Score and progress",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	_, err = bot.Request(tgbotapi.NewSetMyCommands(commands...))
	if err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	sessionStorage := storage.NewSessionStorage()
	messageStorage := storage.NewMessageStorage()

	sessionService := service.NewSessionService(
		quizService,
		sessionStorage,
		cfg.Session.IdleTTL,
		cfg.Session.SweepSpec,
		lg,
	)
	sessionService.SetEvictHook(messageStorage.Delete)

	go sessionService.Start(ctx)

	handler := telegram.NewHandler(
		bot,
		lg,
		sessionService,
		messageStorage,
	)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler stopped with error", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}
