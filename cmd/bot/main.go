package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contestbot/internal/config"
	"contestbot/internal/handler"
	"contestbot/internal/repository/jsonfile"
	"contestbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Contest Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.Int("operators", len(cfg.OperatorIDs)),
	)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("Failed to load timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	// Open the submission registry
	registry, err := jsonfile.New(cfg.RegistryPath, logger)
	if err != nil {
		logger.Fatal("Failed to open registry", zap.Error(err))
	}

	logger.Info("Registry opened", zap.String("path", cfg.RegistryPath))

	// Prepare video storage
	if err := os.MkdirAll(cfg.VideosDir, 0o755); err != nil {
		logger.Fatal("Failed to create videos directory", zap.Error(err))
	}

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize services
	sessions := service.NewSessionStore(logger)
	downloads := service.NewDownloadService(handler.NewFetcher(bot), logger)
	messenger := handler.NewMessenger(bot)
	notify := service.NewNotifyService(messenger, cfg.OperatorIDs, logger)
	admin := service.NewAdminService(registry, messenger, cfg.OperatorIDs, logger)

	// Initialize handler
	h := handler.NewHandler(bot, registry, sessions, downloads, notify, admin, logger, cfg.VideosDir, location)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start session sweeper in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runSessionSweeper(ctx, sessions, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// runSessionSweeper periodically evicts abandoned intake sessions
func runSessionSweeper(ctx context.Context, sessions *service.SessionStore, logger *zap.Logger) {
	const (
		sweepInterval = time.Hour
		sessionTTL    = 24 * time.Hour
	)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session sweeper stopped")
			return
		case <-ticker.C:
			if evicted := sessions.Sweep(sessionTTL); evicted > 0 {
				logger.Info("Evicted abandoned sessions", zap.Int("count", evicted))
			}
		}
	}
}
