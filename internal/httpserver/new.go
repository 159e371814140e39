package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/chatbot"
	tgDelivery "productivity-assistant/internal/chatbot/delivery/telegram"
	"productivity-assistant/internal/middleware"
	"productivity-assistant/internal/workspace"
	"productivity-assistant/pkg/datemath"
	"productivity-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	chatbotUC   chatbot.UseCase
	workspaceUC workspace.UseCase
	dates       *datemath.Parser

	// Optional Telegram delivery
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	ChatbotUC   chatbot.UseCase
	WorkspaceUC workspace.UseCase
	Dates       *datemath.Parser

	TelegramHandler tgDelivery.Handler // nil disables the webhook route
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		chatbotUC:       cfg.ChatbotUC,
		workspaceUC:     cfg.WorkspaceUC,
		dates:           cfg.Dates,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatbotUC == nil {
		return errors.New("chatbot use case is required")
	}
	if srv.workspaceUC == nil {
		return errors.New("workspace use case is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
