package chatbot

import (
	"strings"
	"time"

	"productivity-assistant/internal/model"
)

// Intent is the closed set of things a message can ask for.
type Intent string

const (
	IntentCreateTask  Intent = "CREATE_TASK"
	IntentCreateEvent Intent = "CREATE_EVENT"
	IntentCreateGoal  Intent = "CREATE_GOAL"
	IntentCreateNote  Intent = "CREATE_NOTE"
	IntentQueryTasks  Intent = "QUERY_TASKS"
	IntentQueryStats  Intent = "QUERY_STATS"
	IntentUnknown     Intent = "UNKNOWN"
)

// Intents lists every intent, in declaration order.
var Intents = []Intent{
	IntentCreateTask,
	IntentCreateEvent,
	IntentCreateGoal,
	IntentCreateNote,
	IntentQueryTasks,
	IntentQueryStats,
	IntentUnknown,
}

// ParseIntent maps a free-form string onto an Intent; anything unrecognized is IntentUnknown.
func ParseIntent(s string) Intent {
	candidate := Intent(strings.ToUpper(strings.TrimSpace(s)))
	for _, intent := range Intents {
		if intent == candidate {
			return intent
		}
	}
	return IntentUnknown
}

// RequiresOrganization reports whether the intent creates an organization-scoped resource.
func (i Intent) RequiresOrganization() bool {
	switch i {
	case IntentCreateTask, IntentCreateEvent, IntentCreateGoal:
		return true
	}
	return false
}

// ParsedMessage is the structured reading of one user message.
type ParsedMessage struct {
	Intent           Intent           `json:"intent"`
	Date             *time.Time       `json:"extracted_date,omitempty"`
	Time             *model.TimeOfDay `json:"extracted_time,omitempty"`
	Priority         model.Priority   `json:"priority"`
	PriorityExplicit bool             `json:"-"`
	Title            string           `json:"title,omitempty"`
	Description      string           `json:"description,omitempty"`
	Confidence       float64          `json:"confidence"`
}

// Unparsed returns the reading of an empty or blank message.
func Unparsed() ParsedMessage {
	return ParsedMessage{
		Intent:     IntentUnknown,
		Priority:   model.PriorityMedium,
		Confidence: 0,
	}
}

// QueryResults carries the items returned by a query intent.
type QueryResults struct {
	Items      []model.Task
	TotalCount int
}

// Response is what the interpreter hands back for one message.
type Response struct {
	Intent            Intent
	ActionExecuted    bool
	CreatedResourceID string
	ConfirmationText  string
	ErrorMessage      string
	QueryResults      *QueryResults
	QuickActions      []string
	UsedOllama        bool
	OllamaModel       string
}

// Exchange is one turn of conversation history.
type Exchange struct {
	UserMessage string
	Summary     string
	Intent      Intent
	At          time.Time
}

// ProcessMessageInput is the input of the full interpreter pipeline.
type ProcessMessageInput struct {
	Message        string
	OrganizationID string // optional
}
