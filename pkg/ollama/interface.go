package ollama

import "context"

// IOllama is a client for a local Ollama server.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Chat sends a non-streamed chat request. Model is filled in when empty.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// ListModels returns the names of locally pulled models.
	ListModels(ctx context.Context) ([]string, error)

	// Available reports whether the server answers and has the configured model.
	// The answer is cached for HealthTTL.
	Available(ctx context.Context) bool

	// Model returns the configured model name.
	Model() string
}

// New creates an Ollama client with the given configuration.
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
