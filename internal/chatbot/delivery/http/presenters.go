package http

import (
	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/response"
)

// --- Request DTOs ---

type processMessageReq struct {
	Message        string `json:"message"         binding:"max=2000"`
	OrganizationID string `json:"organization_id"`
}

func (r processMessageReq) validate() error { return requireMessage(r.Message) }

func (r processMessageReq) toInput() chatbot.ProcessMessageInput {
	return chatbot.ProcessMessageInput{
		Message:        r.Message,
		OrganizationID: r.OrganizationID,
	}
}

type parseReq struct {
	Message string `json:"message" binding:"max=2000"`
}

func (r parseReq) validate() error { return requireMessage(r.Message) }

// --- Response DTOs ---

type taskResp struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	DueDate  *response.Date `json:"due_date,omitempty"`
	DueTime  string         `json:"due_time,omitempty"`
	Priority string         `json:"priority"`
	Status   string         `json:"status"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:       t.ID,
		Title:    t.Title,
		Priority: string(t.Priority),
		Status:   string(t.Status),
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	if t.DueTime != nil {
		resp.DueTime = t.DueTime.String()
	}
	return resp
}

type queryResultsResp struct {
	Items      []taskResp `json:"items"`
	TotalCount int        `json:"total_count"`
}

type processMessageResp struct {
	Intent            string            `json:"intent"`
	ActionExecuted    bool              `json:"action_executed"`
	CreatedResourceID string            `json:"created_resource_id,omitempty"`
	ConfirmationText  string            `json:"confirmation_text,omitempty"`
	ErrorMessage      string            `json:"error_message,omitempty"`
	QueryResults      *queryResultsResp `json:"query_results,omitempty"`
	QuickActions      []string          `json:"quick_actions,omitempty"`
	UsedOllama        bool              `json:"used_ollama"`
	OllamaModel       string            `json:"ollama_model,omitempty"`
}

func (h *handler) newProcessMessageResp(out chatbot.Response) processMessageResp {
	resp := processMessageResp{
		Intent:            string(out.Intent),
		ActionExecuted:    out.ActionExecuted,
		CreatedResourceID: out.CreatedResourceID,
		ConfirmationText:  out.ConfirmationText,
		ErrorMessage:      out.ErrorMessage,
		QuickActions:      out.QuickActions,
		UsedOllama:        out.UsedOllama,
		OllamaModel:       out.OllamaModel,
	}
	if out.QueryResults != nil {
		items := make([]taskResp, len(out.QueryResults.Items))
		for i, t := range out.QueryResults.Items {
			items[i] = newTaskResp(t)
		}
		resp.QueryResults = &queryResultsResp{Items: items, TotalCount: out.QueryResults.TotalCount}
	}
	return resp
}

type parseResp struct {
	Intent      string         `json:"intent"`
	Date        *response.Date `json:"extracted_date,omitempty"`
	Time        string         `json:"extracted_time,omitempty"`
	Priority    string         `json:"priority"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Confidence  float64        `json:"confidence"`
}

func (h *handler) newParseResp(msg chatbot.ParsedMessage) parseResp {
	resp := parseResp{
		Intent:      string(msg.Intent),
		Priority:    string(msg.Priority),
		Title:       msg.Title,
		Description: msg.Description,
		Confidence:  msg.Confidence,
	}
	if msg.Date != nil {
		d := response.Date(*msg.Date)
		resp.Date = &d
	}
	if msg.Time != nil {
		resp.Time = msg.Time.String()
	}
	return resp
}

type statusResp struct {
	LLMAvailable bool   `json:"llm_available"`
	LLMModel     string `json:"llm_model,omitempty"`
}
