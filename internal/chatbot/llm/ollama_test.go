package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/chatbot/llm"
	"productivity-assistant/pkg/ollama"
)

type fakeClient struct {
	available bool
	reply     string
	err       error
	got       ollama.ChatRequest
}

func (f *fakeClient) Chat(_ context.Context, req ollama.ChatRequest) (*ollama.ChatResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &ollama.ChatResponse{Message: ollama.Message{Role: ollama.RoleAssistant, Content: f.reply}}, nil
}
func (f *fakeClient) ListModels(context.Context) ([]string, error) { return nil, nil }
func (f *fakeClient) Available(context.Context) bool             { return f.available }
func (f *fakeClient) Model() string                              { return "llama3.2" }

func TestOllama_Generate(t *testing.T) {
	client := &fakeClient{available: true, reply: `{"intent":"CREATE_NOTE"}`}
	o := llm.NewOllama(client)

	assert.True(t, o.IsAvailable(context.Background()))
	assert.Equal(t, "llama3.2", o.Model())

	out, err := o.Generate(context.Background(), "sys", "note: lait", []chatbot.Exchange{
		{UserMessage: "bonjour", Summary: "Je n'ai pas compris"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"intent":"CREATE_NOTE"}`, out)
	assert.Equal(t, ollama.FormatJSON, client.got.Format)
	assert.Equal(t, []ollama.Message{
		{Role: ollama.RoleSystem, Content: "sys"},
		{Role: ollama.RoleUser, Content: "bonjour"},
		{Role: ollama.RoleAssistant, Content: "Je n'ai pas compris"},
		{Role: ollama.RoleUser, Content: "note: lait"},
	}, client.got.Messages)
}

func TestOllama_GenerateErrors(t *testing.T) {
	o := llm.NewOllama(&fakeClient{err: ollama.ErrCircuitOpen})
	_, err := o.Generate(context.Background(), "sys", "x", nil)
	assert.True(t, errors.Is(err, ollama.ErrCircuitOpen))

	o = llm.NewOllama(&fakeClient{})
	_, err = o.Generate(context.Background(), "sys", "x", nil)
	assert.Error(t, err)
}

func TestMessages_NoHistory(t *testing.T) {
	msgs := llm.Messages("sys", "hello", nil)
	require.Len(t, msgs, 2)
	assert.Equal(t, ollama.RoleSystem, msgs[0].Role)
	assert.Equal(t, "hello", msgs[1].Content)
}
