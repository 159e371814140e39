package ollama

import "time"

const (
	DefaultBaseURL     = "http://localhost:11434"
	DefaultModel       = "llama3.2"
	DefaultTimeout     = 30 * time.Second
	DefaultHealthTTL   = 30 * time.Second
	DefaultMaxFailures = 3
	DefaultOpenTimeout = 30 * time.Second

	// checkTimeout bounds the availability check independently of Timeout.
	checkTimeout = 3 * time.Second
	checkKey     = "available"

	chatPath = "/api/chat"
	tagsPath = "/api/tags"

	latestTag = ":latest"
)

// Message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// FormatJSON asks the model for a single JSON value.
const FormatJSON = "json"
