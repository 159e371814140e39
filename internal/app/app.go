// Package app assembles the use cases shared by the API server and the CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"productivity-assistant/config"
	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/chatbot/history"
	"productivity-assistant/internal/chatbot/llm"
	chatbotUC "productivity-assistant/internal/chatbot/usecase"
	"productivity-assistant/internal/workspace"
	"productivity-assistant/internal/workspace/repository/sqlite"
	workspaceUC "productivity-assistant/internal/workspace/usecase"
	"productivity-assistant/pkg/datemath"
	"productivity-assistant/pkg/gcalendar"
	"productivity-assistant/pkg/log"
	"productivity-assistant/pkg/ollama"
)

// App holds the wired use cases.
type App struct {
	Dates     *datemath.Parser
	Workspace workspace.UseCase
	Chatbot   chatbot.UseCase

	db *sql.DB
}

// New opens storage and wires the workspace and chatbot use cases from cfg.
// The LLM and calendar are optional: failures to set them up are logged and skipped.
func New(ctx context.Context, l log.Logger, cfg *config.Config) (*App, error) {
	dates, err := datemath.NewParser(cfg.Interpreter.Timezone)
	if err != nil {
		return nil, err
	}

	db, err := openDB(ctx, cfg.Storage.SQLitePath)
	if err != nil {
		return nil, err
	}
	repo := sqlite.New(db, l, dates.Location())

	var wsOpts []workspaceUC.Option
	if cal := newCalendar(ctx, l, cfg.GoogleCalendar); cal != nil {
		wsOpts = append(wsOpts, workspaceUC.WithCalendar(cal, cfg.GoogleCalendar.CalendarID))
	}
	ws := workspaceUC.New(l, repo, dates, wsOpts...)

	store, err := history.New(cfg.Interpreter.HistorySize, cfg.Interpreter.HistoryUsers)
	if err != nil {
		db.Close()
		return nil, err
	}

	var cbOpts []chatbotUC.Option
	if model := newLLM(ctx, l, cfg.Ollama); model != nil {
		cbOpts = append(cbOpts, chatbotUC.WithLLM(model))
	}

	return &App{
		Dates:     dates,
		Workspace: ws,
		Chatbot:   chatbotUC.New(l, ws, store, dates, cbOpts...),
		db:        db,
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.db.Close()
}

func openDB(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}
	return sqlite.Open(ctx, path)
}

func newCalendar(ctx context.Context, l log.Logger, cfg config.GoogleCalendarConfig) *gcalendar.Client {
	if cfg.CredentialsPath == "" {
		return nil
	}
	client, err := gcalendar.New(ctx, gcalendar.Config{
		CredentialsPath: cfg.CredentialsPath,
		TokenPath:       cfg.TokenPath,
	})
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return nil
	}
	l.Info(ctx, "Google Calendar mirroring enabled")
	return client
}

func newLLM(ctx context.Context, l log.Logger, cfg config.OllamaConfig) chatbot.LLM {
	if !cfg.Enabled {
		l.Info(ctx, "Ollama disabled, using rule-based parsing only")
		return nil
	}
	client, err := ollama.New(ollama.Config{
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Timeout:     cfg.Timeout,
		HealthTTL:   cfg.HealthTTL,
		MaxFailures: cfg.MaxFailures,
		OpenTimeout: cfg.OpenTimeout,
	})
	if err != nil {
		l.Warnf(ctx, "Ollama misconfigured, using rule-based parsing only: %v", err)
		return nil
	}
	l.Infof(ctx, "Ollama enabled: %s at %s", cfg.Model, cfg.BaseURL)
	return llm.NewOllama(client)
}
