package usecase

import (
	"context"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/workspace"
	repo "productivity-assistant/internal/workspace/repository"
	"productivity-assistant/pkg/gcalendar"
)

// CreateEvent stores an event and, when a calendar is configured, mirrors it there.
// A mirroring failure is logged and does not fail the call.
func (uc *implUseCase) CreateEvent(ctx context.Context, sc model.Scope, input workspace.CreateEventInput) (model.Event, error) {
	if err := requireOrganization(sc); err != nil {
		return model.Event{}, err
	}
	title, err := cleanTitle(input.Title)
	if err != nil {
		return model.Event{}, err
	}
	if !input.EndsAt.After(input.StartsAt) {
		return model.Event{}, workspace.ErrInvalidTimeRange
	}

	event, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		Owner:       repo.OwnerOf(sc),
		Title:       title,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		CreatedAt:   uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixCreateEvent, err)
		return model.Event{}, err
	}

	if uc.calendar != nil {
		event.CalendarLink = uc.mirror(ctx, event)
	}
	return event, nil
}

func (uc *implUseCase) mirror(ctx context.Context, event model.Event) string {
	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     event.Title,
		Description: event.Description,
		StartTime:   event.StartsAt,
		EndTime:     event.EndsAt,
		Timezone:    uc.dates.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: calendar mirroring failed for event %s: %v", LogPrefixCreateEvent, event.ID, err)
		return ""
	}

	if err := uc.repo.SetEventCalendarLink(ctx, event.ID, created.HtmlLink); err != nil {
		uc.l.Warnf(ctx, "%s: could not store calendar link: %v", LogPrefixCreateEvent, err)
	}
	return created.HtmlLink
}
