package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"productivity-assistant/config"
	_ "productivity-assistant/docs" // Swagger docs
	"productivity-assistant/internal/app"
	tgDelivery "productivity-assistant/internal/chatbot/delivery/telegram"
	"productivity-assistant/internal/httpserver"
	"productivity-assistant/internal/middleware"
	"productivity-assistant/pkg/log"
	"productivity-assistant/pkg/telegram"
)

// @title       Productivity Assistant API
// @description French-language productivity assistant: tasks, events, goals and notes from natural language.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Productivity Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Interpreter.Timezone)

	// 3. Use cases
	a, err := app.New(ctx, logger, cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize application: %v", err)
		return
	}
	defer a.Close()

	// 4. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, a.Chatbot, bot)
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMin}),
		ChatbotUC:       a.Chatbot,
		WorkspaceUC:     a.Workspace,
		Dates:           a.Dates,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server, auto-detecting an ngrok
// tunnel when no webhook URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.TunnelAPIURL != "" {
		tunnelURL, err := detectTunnelURL(ctx, cfg.TunnelAPIURL, tunnelInterval)
		if err != nil {
			logger.Warnf(ctx, "Could not detect tunnel URL: %v", err)
		} else {
			webhookURL = tunnelURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected tunnel URL: %s", webhookURL)
		}
	}
	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook not registered: no webhook URL")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
