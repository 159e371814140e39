package usecase

import (
	"time"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/chatbot/llmparser"
	"productivity-assistant/internal/chatbot/parser"
	"productivity-assistant/internal/workspace"
	"productivity-assistant/pkg/datemath"
	"productivity-assistant/pkg/log"
)

// implUseCase is the private implementation of chatbot.UseCase.
type implUseCase struct {
	l         log.Logger
	workspace workspace.UseCase
	llm       chatbot.LLM // nil runs on rules only
	llmParser *llmparser.Parser
	rules     *parser.Parser
	history   chatbot.HistoryStore
	dates     *datemath.Parser
	now       func() time.Time
}

var _ chatbot.UseCase = (*implUseCase)(nil)

// Option customizes the use case.
type Option func(*implUseCase)

// WithLLM enables the LLM-assisted parser.
func WithLLM(llm chatbot.LLM) Option {
	return func(uc *implUseCase) {
		uc.llm = llm
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates the interpreter on top of the workspace use case.
func New(l log.Logger, ws workspace.UseCase, history chatbot.HistoryStore, dates *datemath.Parser, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:         l,
		workspace: ws,
		rules:     parser.New(dates),
		history:   history,
		dates:     dates,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.llm != nil {
		uc.llmParser = llmparser.New(l, uc.llm)
	}
	return uc
}

func (uc *implUseCase) today() time.Time {
	return uc.dates.Today(uc.now())
}
