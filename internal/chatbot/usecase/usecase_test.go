package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/chatbot/history"
	"productivity-assistant/internal/chatbot/usecase"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/workspace"
	"productivity-assistant/pkg/datemath"
	"productivity-assistant/pkg/log"
)

// Wednesday 1 May 2024, 10:00 UTC
var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
var today = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

var (
	orgScope      = model.Scope{UserID: "alice", OrganizationID: "acme"}
	personalScope = model.Scope{UserID: "alice"}
)

type mockLLM struct {
	available bool
	reply     string
	err       error
	calls     int
	histories [][]chatbot.Exchange
}

func (m *mockLLM) IsAvailable(context.Context) bool { return m.available }
func (m *mockLLM) Model() string                    { return "llama3.2" }
func (m *mockLLM) Generate(_ context.Context, _, _ string, h []chatbot.Exchange) (string, error) {
	m.calls++
	m.histories = append(m.histories, h)
	return m.reply, m.err
}

type mockWorkspace struct {
	err    error
	scopes []model.Scope
	tasks  []workspace.CreateTaskInput
	events []workspace.CreateEventInput
	goals  []workspace.CreateGoalInput
	notes  []workspace.CreateNoteInput
	lists  []workspace.ListTasksInput
	listed []model.Task
	stats  model.ProductivityStats
}

func (m *mockWorkspace) calls() int {
	return len(m.scopes)
}

func (m *mockWorkspace) CreateTask(_ context.Context, sc model.Scope, in workspace.CreateTaskInput) (model.Task, error) {
	m.scopes = append(m.scopes, sc)
	m.tasks = append(m.tasks, in)
	if m.err != nil {
		return model.Task{}, m.err
	}
	return model.Task{ID: "task-1", Title: in.Title, DueDate: in.DueDate, DueTime: in.DueTime, Priority: in.Priority}, nil
}

func (m *mockWorkspace) ListTasks(_ context.Context, sc model.Scope, in workspace.ListTasksInput) ([]model.Task, error) {
	m.scopes = append(m.scopes, sc)
	m.lists = append(m.lists, in)
	return m.listed, m.err
}

func (m *mockWorkspace) CompleteTask(_ context.Context, sc model.Scope, id string) (model.Task, error) {
	m.scopes = append(m.scopes, sc)
	return model.Task{ID: id, Status: model.TaskStatusCompleted}, m.err
}

func (m *mockWorkspace) CreateEvent(_ context.Context, sc model.Scope, in workspace.CreateEventInput) (model.Event, error) {
	m.scopes = append(m.scopes, sc)
	m.events = append(m.events, in)
	if m.err != nil {
		return model.Event{}, m.err
	}
	return model.Event{ID: "event-1", Title: in.Title, StartsAt: in.StartsAt, EndsAt: in.EndsAt}, nil
}

func (m *mockWorkspace) CreateGoal(_ context.Context, sc model.Scope, in workspace.CreateGoalInput) (model.Goal, error) {
	m.scopes = append(m.scopes, sc)
	m.goals = append(m.goals, in)
	return model.Goal{ID: "goal-1", Title: in.Title, TargetDate: in.TargetDate}, m.err
}

func (m *mockWorkspace) CreateNote(_ context.Context, sc model.Scope, in workspace.CreateNoteInput) (model.Note, error) {
	m.scopes = append(m.scopes, sc)
	m.notes = append(m.notes, in)
	return model.Note{ID: "note-1", Title: in.Title, Content: in.Content, OrganizationID: sc.OrganizationID}, m.err
}

func (m *mockWorkspace) GetProductivityStats(_ context.Context, sc model.Scope) (model.ProductivityStats, error) {
	m.scopes = append(m.scopes, sc)
	return m.stats, m.err
}

type fixture struct {
	uc      chatbot.UseCase
	ws      *mockWorkspace
	history *history.Store
}

func setup(t *testing.T, llm chatbot.LLM) fixture {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	store, err := history.New(history.DefaultSize, 100)
	require.NoError(t, err)

	ws := &mockWorkspace{}
	opts := []usecase.Option{usecase.WithClock(func() time.Time { return now })}
	if llm != nil {
		opts = append(opts, usecase.WithLLM(llm))
	}
	return fixture{
		uc:      usecase.New(log.NewNopLogger(), ws, store, dates, opts...),
		ws:      ws,
		history: store,
	}
}

func process(t *testing.T, f fixture, sc model.Scope, message string) chatbot.Response {
	t.Helper()
	resp, err := f.uc.ProcessMessage(context.Background(), sc, chatbot.ProcessMessageInput{Message: message})
	require.NoError(t, err)
	return resp
}

func TestProcessMessage_Strategy(t *testing.T) {
	t.Run("rules only without LLM", func(t *testing.T) {
		f := setup(t, nil)
		resp := process(t, f, orgScope, "Creer une tache: finir le rapport")

		assert.Equal(t, chatbot.IntentCreateTask, resp.Intent)
		assert.False(t, resp.UsedOllama)
		assert.Empty(t, resp.OllamaModel)
		require.Len(t, f.ws.tasks, 1)
		assert.Equal(t, "Finir le rapport", f.ws.tasks[0].Title)
		assert.False(t, f.uc.IsLLMAvailable(context.Background()))
		assert.Empty(t, f.uc.LLMModelName())
	})

	t.Run("unavailable LLM is never called", func(t *testing.T) {
		llm := &mockLLM{available: false, reply: `{"intent":"CREATE_NOTE"}`}
		f := setup(t, llm)
		resp := process(t, f, orgScope, "Creer une tache: finir le rapport")

		assert.Zero(t, llm.calls)
		assert.False(t, resp.UsedOllama)
		assert.Equal(t, chatbot.IntentCreateTask, resp.Intent)
	})

	t.Run("prose wrapped LLM reply is used", func(t *testing.T) {
		llm := &mockLLM{available: true, reply: "Voici : {\"intent\":\"CREATE_TASK\",\"title\":\"Préparer la démo\",\"priority\":\"HIGH\",\"date\":\"2024-05-03\",\"confidence\":0.9} !"}
		f := setup(t, llm)
		resp := process(t, f, orgScope, "il faut que je prépare la démo pour vendredi")

		assert.Equal(t, 1, llm.calls)
		assert.True(t, resp.UsedOllama)
		assert.Equal(t, "llama3.2", resp.OllamaModel)
		assert.True(t, resp.ActionExecuted)
		assert.Equal(t, "task-1", resp.CreatedResourceID)
		require.Len(t, f.ws.tasks, 1)
		assert.Equal(t, "Préparer la démo", f.ws.tasks[0].Title)
		assert.Equal(t, model.PriorityHigh, f.ws.tasks[0].Priority)
		assert.Contains(t, resp.ConfirmationText, "Préparer la démo")
		assert.Contains(t, resp.ConfirmationText, "haute")
	})

	t.Run("UNKNOWN from LLM falls back to rules", func(t *testing.T) {
		llm := &mockLLM{available: true, reply: `{"intent":"UNKNOWN","confidence":0.2}`}
		f := setup(t, llm)
		resp := process(t, f, orgScope, "Rdv a 14h")

		assert.Equal(t, 1, llm.calls)
		assert.False(t, resp.UsedOllama)
		assert.Equal(t, chatbot.IntentCreateEvent, resp.Intent)
	})

	t.Run("failing LLM falls back to rules", func(t *testing.T) {
		llm := &mockLLM{available: true, err: errors.New("connection reset")}
		f := setup(t, llm)
		resp := process(t, f, orgScope, "Rdv a 14h")

		assert.Equal(t, 1, llm.calls)
		assert.False(t, resp.UsedOllama)
		assert.Equal(t, chatbot.IntentCreateEvent, resp.Intent)
		assert.True(t, resp.ActionExecuted)
	})

	t.Run("malformed LLM reply falls back to rules", func(t *testing.T) {
		llm := &mockLLM{available: true, reply: `{"intent": "CREATE_TASK"`}
		f := setup(t, llm)
		resp := process(t, f, orgScope, "Note: acheter du lait")

		assert.False(t, resp.UsedOllama)
		assert.Equal(t, chatbot.IntentCreateNote, resp.Intent)
	})
}

func TestProcessMessage_History(t *testing.T) {
	llm := &mockLLM{available: true, reply: `{"intent":"CREATE_NOTE","title":"Lait"}`}
	f := setup(t, llm)

	process(t, f, personalScope, "note: lait")
	process(t, f, personalScope, "note: pain")

	require.Len(t, llm.histories, 2)
	assert.Empty(t, llm.histories[0])
	require.Len(t, llm.histories[1], 1)
	assert.Equal(t, "note: lait", llm.histories[1][0].UserMessage)
	assert.Equal(t, chatbot.IntentCreateNote, llm.histories[1][0].Intent)

	assert.Len(t, f.history.Recent("alice"), 2)
	f.uc.ClearHistory(context.Background(), "alice")
	assert.Empty(t, f.history.Recent("alice"))
}

func TestProcessMessage_DomainErrorPropagates(t *testing.T) {
	f := setup(t, nil)
	boom := errors.New("database is locked")
	f.ws.err = boom

	_, err := f.uc.ProcessMessage(context.Background(), orgScope, chatbot.ProcessMessageInput{Message: "Creer une tache: x"})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.history.Recent("alice"))
}

func TestProcessMessage_MissingUser(t *testing.T) {
	f := setup(t, nil)
	_, err := f.uc.ProcessMessage(context.Background(), model.Scope{}, chatbot.ProcessMessageInput{Message: "x"})
	assert.ErrorIs(t, err, chatbot.ErrMissingUser)
}

func TestDispatch_OrganizationRequired(t *testing.T) {
	for _, message := range []string{
		"Creer une tache: finir le rapport",
		"Rdv a 14h",
		"Definir un objectif: courir",
	} {
		t.Run(message, func(t *testing.T) {
			f := setup(t, nil)
			resp := process(t, f, personalScope, message)

			assert.False(t, resp.ActionExecuted)
			assert.Contains(t, resp.ErrorMessage, "organisation")
			assert.Empty(t, resp.CreatedResourceID)
			assert.Zero(t, f.ws.calls())
		})
	}
}

func TestDispatch_OrganizationFromInput(t *testing.T) {
	f := setup(t, nil)
	resp, err := f.uc.ProcessMessage(context.Background(), personalScope, chatbot.ProcessMessageInput{
		Message:        "Creer une tache: finir le rapport",
		OrganizationID: "acme",
	})
	require.NoError(t, err)
	assert.True(t, resp.ActionExecuted)
	require.Len(t, f.ws.scopes, 1)
	assert.Equal(t, "acme", f.ws.scopes[0].OrganizationID)
}

func TestDispatch_Defaults(t *testing.T) {
	t.Run("task without title", func(t *testing.T) {
		f := setup(t, nil)
		resp := process(t, f, orgScope, "Creer une tache urgente pour demain a 14h")

		require.Len(t, f.ws.tasks, 1)
		in := f.ws.tasks[0]
		assert.Equal(t, usecase.DefaultTaskTitle, in.Title)
		assert.Equal(t, model.PriorityUrgent, in.Priority)
		require.NotNil(t, in.DueDate)
		assert.True(t, today.AddDate(0, 0, 1).Equal(*in.DueDate))
		assert.Equal(t, "Tâche « Nouvelle tâche » créée pour demain à 14:00 (priorité urgente).", resp.ConfirmationText)
	})

	t.Run("task with time only is due today", func(t *testing.T) {
		f := setup(t, nil)
		process(t, f, orgScope, "Creer une tache a 16h")
		require.NotNil(t, f.ws.tasks[0].DueDate)
		assert.True(t, today.Equal(*f.ws.tasks[0].DueDate))
	})

	t.Run("event defaults to today 09:00 for one hour", func(t *testing.T) {
		f := setup(t, nil)
		resp := process(t, f, orgScope, "Reunion")

		require.Len(t, f.ws.events, 1)
		in := f.ws.events[0]
		assert.Equal(t, usecase.DefaultEventTitle, in.Title)
		assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), in.StartsAt)
		assert.Equal(t, time.Hour, in.EndsAt.Sub(in.StartsAt))
		assert.Equal(t, "event-1", resp.CreatedResourceID)
		assert.Equal(t, "Événement « Nouvel événement » planifié aujourd'hui à 09:00.", resp.ConfirmationText)
	})

	t.Run("event with day and time", func(t *testing.T) {
		f := setup(t, nil)
		process(t, f, orgScope, "Reunion lundi a 9h30")
		assert.Equal(t, time.Date(2024, 5, 6, 9, 30, 0, 0, time.UTC), f.ws.events[0].StartsAt)
	})

	t.Run("goal keeps its target date", func(t *testing.T) {
		f := setup(t, nil)
		resp := process(t, f, orgScope, "Definir un objectif: courir un marathon le 15")

		require.Len(t, f.ws.goals, 1)
		assert.Equal(t, "Courir un marathon le 15", f.ws.goals[0].Title)
		require.NotNil(t, f.ws.goals[0].TargetDate)
		assert.Contains(t, resp.ConfirmationText, "15/05/2024")
	})

	t.Run("personal note", func(t *testing.T) {
		f := setup(t, nil)
		resp := process(t, f, personalScope, "Note: acheter du lait")

		assert.True(t, resp.ActionExecuted)
		assert.Equal(t, "note-1", resp.CreatedResourceID)
		require.Len(t, f.ws.notes, 1)
		assert.Equal(t, "Acheter du lait", f.ws.notes[0].Title)
		assert.Equal(t, "Acheter du lait", f.ws.notes[0].Content)
		assert.Empty(t, f.ws.scopes[0].OrganizationID)
	})

	t.Run("note without title keeps the raw message", func(t *testing.T) {
		f := setup(t, nil)
		process(t, f, personalScope, "prendre une note sur le budget")
		assert.Equal(t, usecase.DefaultNoteTitle, f.ws.notes[0].Title)
		assert.Equal(t, "prendre une note sur le budget", f.ws.notes[0].Content)
	})
}

func TestDispatch_Queries(t *testing.T) {
	t.Run("tasks default to today", func(t *testing.T) {
		f := setup(t, nil)
		resp := process(t, f, orgScope, "Quelles sont mes taches ?")

		assert.True(t, resp.ActionExecuted)
		require.NotNil(t, resp.QueryResults)
		assert.Zero(t, resp.QueryResults.TotalCount)
		assert.NotNil(t, resp.QueryResults.Items)
		require.Len(t, f.ws.lists, 1)
		assert.True(t, today.Equal(*f.ws.lists[0].DueOn))
		assert.Equal(t, "Aucune tâche prévue pour aujourd'hui.", resp.ConfirmationText)
	})

	t.Run("tasks on the extracted date", func(t *testing.T) {
		f := setup(t, nil)
		nine := model.TimeOfDay{Hour: 9}
		f.ws.listed = []model.Task{{ID: "1", Title: "Appeler Marc", DueTime: &nine}, {ID: "2", Title: "Courses"}}
		resp := process(t, f, personalScope, "Quelles sont mes taches demain ?")

		assert.True(t, today.AddDate(0, 0, 1).Equal(*f.ws.lists[0].DueOn))
		assert.Equal(t, 2, resp.QueryResults.TotalCount)
		assert.Equal(t, "Vous avez 2 tâche(s) pour demain :\n• Appeler Marc (09:00)\n• Courses", resp.ConfirmationText)
	})

	t.Run("stats", func(t *testing.T) {
		f := setup(t, nil)
		f.ws.stats = model.ProductivityStats{TasksCompletedThisWeek: 3, PendingTasks: 1, ProductivityScore: 75}
		resp := process(t, f, orgScope, "Combien de taches ai-je completees cette semaine ?")

		assert.Equal(t, chatbot.IntentQueryStats, resp.Intent)
		assert.True(t, resp.ActionExecuted)
		assert.Contains(t, resp.ConfirmationText, "3 tâche(s)")
		assert.Contains(t, resp.ConfirmationText, "75/100")
	})
}

func TestDispatch_Unknown(t *testing.T) {
	f := setup(t, nil)
	resp := process(t, f, orgScope, "Quel temps fait-il ?")

	assert.Equal(t, chatbot.IntentUnknown, resp.Intent)
	assert.False(t, resp.ActionExecuted)
	assert.Equal(t, usecase.MsgNotUnderstood, resp.ConfirmationText)
	assert.Equal(t, usecase.QuickActions, resp.QuickActions)
	assert.Zero(t, f.ws.calls())

	// callers cannot alter the shared list
	resp.QuickActions[0] = "changed"
	assert.NotEqual(t, "changed", usecase.QuickActions[0])
}

func TestParse_RulesOnly(t *testing.T) {
	llm := &mockLLM{available: true, reply: `{"intent":"CREATE_NOTE"}`}
	f := setup(t, llm)

	msg := f.uc.Parse(context.Background(), "Rdv demain a 14h")
	assert.Equal(t, chatbot.IntentCreateEvent, msg.Intent)
	assert.True(t, today.AddDate(0, 0, 1).Equal(*msg.Date))
	assert.Zero(t, llm.calls)
	assert.True(t, f.uc.IsLLMAvailable(context.Background()))
	assert.Equal(t, "llama3.2", f.uc.LLMModelName())
}
