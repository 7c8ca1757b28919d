package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"calendarbot/config"
	"calendarbot/internal/clock"
	"calendarbot/internal/delivery/telegram"
	"calendarbot/internal/repository/jsonfile"
	"calendarbot/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}
	if cfg.BotToken == "" {
		fmt.Fprintln(os.Stderr, "Ошибка: Не найден API_TOKEN в переменных окружения")
		os.Exit(1)
	}

	logger := config.NewLogger()

	userRepo := jsonfile.NewUserRepository(cfg.UsersFile)
	eventRepo := jsonfile.NewEventRepository(cfg.EventsFile)
	access := services.NewAccessService(userRepo, logger)
	chat := services.NewChatService(eventRepo, access, clock.NewSystem(), cfg.SessionTTL, logger)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Error("telegram connection failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot := telegram.New(api, chat, logger)
	logger.Info("bot started",
		"environment", cfg.Environment,
		"events_file", cfg.EventsFile,
		"users_file", cfg.UsersFile,
	)
	if err := bot.Run(ctx); err != nil {
		logger.Error("bot stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("bot stopped")
}
