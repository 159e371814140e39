package usecase

import (
	"context"
	"time"

	"productivity-assistant/internal/workspace"
	"productivity-assistant/internal/workspace/repository"
	"productivity-assistant/pkg/datemath"
	"productivity-assistant/pkg/gcalendar"
	"productivity-assistant/pkg/log"
)

// Calendar mirrors created events to an external calendar.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of workspace.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	calendar   Calendar // nil disables mirroring
	calendarID string
	dates      *datemath.Parser
	now        func() time.Time
}

var _ workspace.UseCase = (*implUseCase)(nil)

// Option customizes the use case.
type Option func(*implUseCase)

// WithCalendar mirrors created events into calendarID.
func WithCalendar(cal Calendar, calendarID string) Option {
	return func(uc *implUseCase) {
		uc.calendar = cal
		uc.calendarID = calendarID
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new workspace UseCase implementation.
func New(l log.Logger, repo repository.Repository, dates *datemath.Parser, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:     l,
		repo:  repo,
		dates: dates,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
