package llmparser_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/chatbot/llmparser"
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/log"
)

var today = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

type fakeLLM struct {
	reply   string
	err     error
	calls   int
	system  string
	message string
	history []chatbot.Exchange
}

func (f *fakeLLM) IsAvailable(context.Context) bool { return true }
func (f *fakeLLM) Model() string                    { return "fake" }
func (f *fakeLLM) Generate(_ context.Context, systemPrompt, userMessage string, history []chatbot.Exchange) (string, error) {
	f.calls++
	f.system, f.message, f.history = systemPrompt, userMessage, history
	return f.reply, f.err
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare", `{"a":1}`, `{"a":1}`, true},
		{"prose around", `Voici le résultat : {"intent":"CREATE_TASK"} merci`, `{"intent":"CREATE_TASK"}`, true},
		{"markdown fence", "```json\n{\"a\":{\"b\":2}}\n```", `{"a":{"b":2}}`, true},
		{"braces in strings", `{"title":"a } b { c"} trailing }`, `{"title":"a } b { c"}`, true},
		{"escaped quote", `{"title":"dit \"}\" ok"}`, `{"title":"dit \"}\" ok"}`, true},
		{"first of two", `{"a":1} {"b":2}`, `{"a":1}`, true},
		{"unbalanced", `{"a":{"b":1}`, "", false},
		{"none", "pas de json ici", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := llmparser.ExtractJSONObject(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_FullReply(t *testing.T) {
	msg, err := llmparser.Decode(`{
		"intent": "create_event",
		"date": "2024-05-03",
		"time": "14:30",
		"priority": "high",
		"title": "Point équipe",
		"description": "salle B",
		"confidence": 0.92
	}`, today)
	require.NoError(t, err)

	assert.Equal(t, chatbot.IntentCreateEvent, msg.Intent)
	require.NotNil(t, msg.Date)
	assert.True(t, msg.Date.Equal(time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, &model.TimeOfDay{Hour: 14, Minute: 30}, msg.Time)
	assert.Equal(t, model.PriorityHigh, msg.Priority)
	assert.True(t, msg.PriorityExplicit)
	assert.Equal(t, "Point équipe", msg.Title)
	assert.Equal(t, "salle B", msg.Description)
	assert.InDelta(t, 0.92, msg.Confidence, 1e-9)
}

func TestDecode_Lenient(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		intent     chatbot.Intent
		priority   model.Priority
		hasDate    bool
		hasTime    bool
		confidence float64
	}{
		{
			name:       "unknown intent and priority",
			in:         `{"intent":"BOOK_FLIGHT","priority":"CRITICAL","confidence":0.4}`,
			intent:     chatbot.IntentUnknown,
			priority:   model.PriorityMedium,
			confidence: 0.4,
		},
		{
			name:       "invalid date and time are dropped",
			in:         `{"intent":"CREATE_TASK","date":"demain","time":"25:99","confidence":0.7}`,
			intent:     chatbot.IntentCreateTask,
			priority:   model.PriorityMedium,
			confidence: 0.7,
		},
		{
			name:       "null literals",
			in:         `{"intent":"CREATE_TASK","date":null,"time":"null","title":"null","confidence":0.6}`,
			intent:     chatbot.IntentCreateTask,
			priority:   model.PriorityMedium,
			confidence: 0.6,
		},
		{
			name:       "percent confidence",
			in:         `{"intent":"CREATE_NOTE","confidence":85}`,
			intent:     chatbot.IntentCreateNote,
			priority:   model.PriorityMedium,
			confidence: 0.85,
		},
		{
			name:       "string confidence",
			in:         `{"intent":"CREATE_NOTE","confidence":"70%"}`,
			intent:     chatbot.IntentCreateNote,
			priority:   model.PriorityMedium,
			confidence: 0.7,
		},
		{
			name:       "out of range confidence is clamped",
			in:         `{"intent":"CREATE_NOTE","confidence":250}`,
			intent:     chatbot.IntentCreateNote,
			priority:   model.PriorityMedium,
			confidence: 1,
		},
		{
			name:       "negative confidence is clamped",
			in:         `{"intent":"CREATE_NOTE","confidence":-3}`,
			intent:     chatbot.IntentCreateNote,
			priority:   model.PriorityMedium,
			confidence: 0,
		},
		{
			name:       "absent confidence is scored",
			in:         `{"intent":"CREATE_TASK","date":"2024-05-02","time":"09:00"}`,
			intent:     chatbot.IntentCreateTask,
			priority:   model.PriorityMedium,
			hasDate:    true,
			hasTime:    true,
			confidence: 0.8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := llmparser.Decode(tt.in, today)
			require.NoError(t, err)
			assert.Equal(t, tt.intent, msg.Intent)
			assert.Equal(t, tt.priority, msg.Priority)
			assert.Equal(t, tt.hasDate, msg.Date != nil)
			assert.Equal(t, tt.hasTime, msg.Time != nil)
			assert.Empty(t, msg.Title)
			assert.InDelta(t, tt.confidence, msg.Confidence, 1e-9)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := llmparser.Decode("   ", today)
	assert.ErrorIs(t, err, llmparser.ErrEmptyResponse)

	_, err = llmparser.Decode("Je ne sais pas.", today)
	assert.ErrorIs(t, err, llmparser.ErrNoJSONObject)

	_, err = llmparser.Decode(`{"intent": CREATE_TASK}`, today)
	assert.Error(t, err)
}

func TestParser_Parse(t *testing.T) {
	history := []chatbot.Exchange{{UserMessage: "bonjour", Summary: "salut", Intent: chatbot.IntentUnknown}}

	t.Run("prose wrapped reply", func(t *testing.T) {
		llm := &fakeLLM{reply: "Bien sûr ! {\"intent\":\"CREATE_TASK\",\"title\":\"Rapport\",\"confidence\":0.9} Bonne journée"}
		p := llmparser.New(log.NewNopLogger(), llm)

		msg, ok := p.Parse(context.Background(), "tâche rapport", history, today)
		require.True(t, ok)
		assert.Equal(t, chatbot.IntentCreateTask, msg.Intent)
		assert.Equal(t, "Rapport", msg.Title)
		assert.Equal(t, 1, llm.calls)
		assert.Equal(t, "tâche rapport", llm.message)
		assert.Equal(t, history, llm.history)
		assert.Contains(t, llm.system, "2024-05-01")
		assert.Contains(t, llm.system, "mercredi")
	})

	t.Run("port error", func(t *testing.T) {
		llm := &fakeLLM{err: errors.New("connection refused")}
		p := llmparser.New(log.NewNopLogger(), llm)

		msg, ok := p.Parse(context.Background(), "x", nil, today)
		assert.False(t, ok)
		assert.Equal(t, chatbot.ParsedMessage{}, msg)
		assert.Equal(t, 1, llm.calls)
	})

	t.Run("malformed reply", func(t *testing.T) {
		llm := &fakeLLM{reply: `{"intent": "CREATE_TASK",`}
		p := llmparser.New(log.NewNopLogger(), llm)

		_, ok := p.Parse(context.Background(), "x", nil, today)
		assert.False(t, ok)
	})
}
