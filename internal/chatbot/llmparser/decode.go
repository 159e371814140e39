package llmparser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/chatbot/parser"
	"productivity-assistant/internal/model"
)

// reply is the object the model is asked to produce. Every field is optional.
type reply struct {
	Intent      string          `json:"intent"`
	Date        *string         `json:"date"`
	Time        *string         `json:"time"`
	Priority    *string         `json:"priority"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Confidence  json.RawMessage `json:"confidence"`
}

// Decode maps an LLM reply onto a ParsedMessage. Dates are read in today's location.
// Fields the model got wrong are dropped instead of failing the whole reply.
func Decode(text string, today time.Time) (chatbot.ParsedMessage, error) {
	if strings.TrimSpace(text) == "" {
		return chatbot.ParsedMessage{}, ErrEmptyResponse
	}

	object, ok := ExtractJSONObject(text)
	if !ok {
		return chatbot.ParsedMessage{}, ErrNoJSONObject
	}

	var r reply
	if err := json.Unmarshal([]byte(object), &r); err != nil {
		return chatbot.ParsedMessage{}, fmt.Errorf("decode LLM reply: %w", err)
	}

	msg := chatbot.ParsedMessage{
		Intent:      chatbot.ParseIntent(r.Intent),
		Priority:    model.PriorityMedium,
		Title:       optional(r.Title),
		Description: optional(r.Description),
	}
	if s := optional(r.Date); s != "" {
		if d, err := time.ParseInLocation(replyDateFormat, s, today.Location()); err == nil {
			msg.Date = &d
		}
	}
	if s := optional(r.Time); s != "" {
		if t, err := model.ParseTimeOfDay(s); err == nil {
			msg.Time = &t
		}
	}
	if s := optional(r.Priority); s != "" {
		msg.Priority, msg.PriorityExplicit = model.ParsePriority(s)
	}

	if c, ok := confidence(r.Confidence); ok {
		msg.Confidence = c
	} else {
		msg.Confidence = parser.Score(msg)
	}
	return msg, nil
}

// optional trims a nullable string and treats the literal "null" as absent.
func optional(s *string) string {
	if s == nil {
		return ""
	}
	v := strings.TrimSpace(*s)
	if strings.EqualFold(v, "null") {
		return ""
	}
	return v
}

// confidence accepts a number or a numeric string. Values above 1 and up to
// 100 are percentages. The result is clamped to [0, 1].
func confidence(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	var c float64
	if err := json.Unmarshal(raw, &c); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
		if err != nil {
			return 0, false
		}
		c = v
	}

	if c > 1 && c <= percentCeiling {
		c /= percentCeiling
	}
	return clamp(c), true
}

func clamp(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	}
	return c
}
