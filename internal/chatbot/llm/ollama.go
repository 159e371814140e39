// Package llm adapts language-model backends to the chatbot.LLM port.
package llm

import (
	"context"
	"errors"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/pkg/ollama"
)

// temperature keeps extraction close to deterministic.
const temperature = 0.1

var errEmptyReply = errors.New("ollama returned an empty message")

// Ollama serves the chatbot.LLM port from a local Ollama server.
type Ollama struct {
	client ollama.IOllama
}

var _ chatbot.LLM = (*Ollama)(nil)

// NewOllama wraps client.
func NewOllama(client ollama.IOllama) *Ollama {
	return &Ollama{client: client}
}

func (o *Ollama) IsAvailable(ctx context.Context) bool {
	return o.client.Available(ctx)
}

func (o *Ollama) Model() string {
	return o.client.Model()
}

// Generate replays history as prior chat turns between the system prompt and
// the new user message, and asks for a JSON reply.
func (o *Ollama) Generate(ctx context.Context, systemPrompt, userMessage string, history []chatbot.Exchange) (string, error) {
	resp, err := o.client.Chat(ctx, ollama.ChatRequest{
		Messages: Messages(systemPrompt, userMessage, history),
		Format:   ollama.FormatJSON,
		Options:  &ollama.Options{Temperature: temperature},
	})
	if err != nil {
		return "", err
	}
	if resp.Message.Content == "" {
		return "", errEmptyReply
	}
	return resp.Message.Content, nil
}

// Messages lays out a chat transcript: system, then each past exchange, then the new message.
func Messages(systemPrompt, userMessage string, history []chatbot.Exchange) []ollama.Message {
	msgs := make([]ollama.Message, 0, 2+2*len(history))
	msgs = append(msgs, ollama.Message{Role: ollama.RoleSystem, Content: systemPrompt})
	for _, ex := range history {
		msgs = append(msgs, ollama.Message{Role: ollama.RoleUser, Content: ex.UserMessage})
		if ex.Summary != "" {
			msgs = append(msgs, ollama.Message{Role: ollama.RoleAssistant, Content: ex.Summary})
		}
	}
	return append(msgs, ollama.Message{Role: ollama.RoleUser, Content: userMessage})
}
