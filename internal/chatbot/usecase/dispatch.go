package usecase

import (
	"context"
	"time"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/workspace"
)

// dispatch executes msg for sc. Precondition failures are reported in the
// response; only workspace failures are returned as errors.
func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, msg chatbot.ParsedMessage, raw string, today time.Time) (chatbot.Response, error) {
	if msg.Intent.RequiresOrganization() && !sc.HasOrganization() {
		return chatbot.Response{Intent: msg.Intent, ErrorMessage: organizationRequired[msg.Intent]}, nil
	}

	switch msg.Intent {
	case chatbot.IntentCreateTask:
		return uc.createTask(ctx, sc, msg, today)
	case chatbot.IntentCreateEvent:
		return uc.createEvent(ctx, sc, msg, today)
	case chatbot.IntentCreateGoal:
		return uc.createGoal(ctx, sc, msg)
	case chatbot.IntentCreateNote:
		return uc.createNote(ctx, sc, msg, raw)
	case chatbot.IntentQueryTasks:
		return uc.queryTasks(ctx, sc, msg, today)
	case chatbot.IntentQueryStats:
		return uc.queryStats(ctx, sc)
	case chatbot.IntentUnknown:
		return notUnderstood(), nil
	default:
		uc.l.Warnf(ctx, "%s: unhandled intent %q", LogPrefixDispatch, msg.Intent)
		return notUnderstood(), nil
	}
}

func notUnderstood() chatbot.Response {
	actions := make([]string, len(QuickActions))
	copy(actions, QuickActions)
	return chatbot.Response{
		Intent:           chatbot.IntentUnknown,
		ConfirmationText: MsgNotUnderstood,
		QuickActions:     actions,
	}
}

func (uc *implUseCase) createTask(ctx context.Context, sc model.Scope, msg chatbot.ParsedMessage, today time.Time) (chatbot.Response, error) {
	due := msg.Date
	if due == nil && msg.Time != nil {
		due = &today
	}

	task, err := uc.workspace.CreateTask(ctx, sc, workspace.CreateTaskInput{
		Title:       orDefault(msg.Title, DefaultTaskTitle),
		Description: msg.Description,
		DueDate:     due,
		DueTime:     msg.Time,
		Priority:    msg.Priority,
	})
	if err != nil {
		return chatbot.Response{}, err
	}

	return chatbot.Response{
		Intent:            msg.Intent,
		ActionExecuted:    true,
		CreatedResourceID: task.ID,
		ConfirmationText:  uc.taskCreatedText(task, today),
	}, nil
}

func (uc *implUseCase) createEvent(ctx context.Context, sc model.Scope, msg chatbot.ParsedMessage, today time.Time) (chatbot.Response, error) {
	day := today
	if msg.Date != nil {
		day = *msg.Date
	}
	clock := model.TimeOfDay{Hour: defaultEventHour}
	if msg.Time != nil {
		clock = *msg.Time
	}
	start := clock.On(day)

	event, err := uc.workspace.CreateEvent(ctx, sc, workspace.CreateEventInput{
		Title:       orDefault(msg.Title, DefaultEventTitle),
		Description: msg.Description,
		StartsAt:    start,
		EndsAt:      start.Add(defaultEventDuration * time.Minute),
	})
	if err != nil {
		return chatbot.Response{}, err
	}

	return chatbot.Response{
		Intent:            msg.Intent,
		ActionExecuted:    true,
		CreatedResourceID: event.ID,
		ConfirmationText:  uc.eventCreatedText(event, today),
	}, nil
}

func (uc *implUseCase) createGoal(ctx context.Context, sc model.Scope, msg chatbot.ParsedMessage) (chatbot.Response, error) {
	goal, err := uc.workspace.CreateGoal(ctx, sc, workspace.CreateGoalInput{
		Title:       orDefault(msg.Title, DefaultGoalTitle),
		Description: msg.Description,
		TargetDate:  msg.Date,
	})
	if err != nil {
		return chatbot.Response{}, err
	}

	return chatbot.Response{
		Intent:            msg.Intent,
		ActionExecuted:    true,
		CreatedResourceID: goal.ID,
		ConfirmationText:  goalCreatedText(goal),
	}, nil
}

func (uc *implUseCase) createNote(ctx context.Context, sc model.Scope, msg chatbot.ParsedMessage, raw string) (chatbot.Response, error) {
	title := orDefault(msg.Title, DefaultNoteTitle)
	content := msg.Description
	if content == "" {
		content = msg.Title
	}
	if content == "" {
		content = raw
	}

	note, err := uc.workspace.CreateNote(ctx, sc, workspace.CreateNoteInput{Title: title, Content: content})
	if err != nil {
		return chatbot.Response{}, err
	}

	return chatbot.Response{
		Intent:            msg.Intent,
		ActionExecuted:    true,
		CreatedResourceID: note.ID,
		ConfirmationText:  noteCreatedText(note),
	}, nil
}

func (uc *implUseCase) queryTasks(ctx context.Context, sc model.Scope, msg chatbot.ParsedMessage, today time.Time) (chatbot.Response, error) {
	day := today
	if msg.Date != nil {
		day = *msg.Date
	}

	tasks, err := uc.workspace.ListTasks(ctx, sc, workspace.ListTasksInput{DueOn: &day})
	if err != nil {
		return chatbot.Response{}, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	return chatbot.Response{
		Intent:           msg.Intent,
		ActionExecuted:   true,
		ConfirmationText: uc.tasksText(tasks, day, today),
		QueryResults:     &chatbot.QueryResults{Items: tasks, TotalCount: len(tasks)},
	}, nil
}

func (uc *implUseCase) queryStats(ctx context.Context, sc model.Scope) (chatbot.Response, error) {
	stats, err := uc.workspace.GetProductivityStats(ctx, sc)
	if err != nil {
		return chatbot.Response{}, err
	}

	return chatbot.Response{
		Intent:           chatbot.IntentQueryStats,
		ActionExecuted:   true,
		ConfirmationText: statsText(stats),
	}, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
