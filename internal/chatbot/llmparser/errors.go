package llmparser

import "errors"

var (
	ErrNoJSONObject  = errors.New("no JSON object in LLM reply")
	ErrEmptyResponse = errors.New("empty LLM reply")
)
