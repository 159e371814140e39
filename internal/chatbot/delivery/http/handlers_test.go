package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/middleware"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/workspace"
	"productivity-assistant/pkg/log"
)

type mockUseCase struct {
	resp     chatbot.Response
	err      error
	parsed   chatbot.ParsedMessage
	scope    model.Scope
	input    chatbot.ProcessMessageInput
	cleared  string
	llmModel string
}

func (m *mockUseCase) Parse(ctx context.Context, raw string) chatbot.ParsedMessage {
	return m.parsed
}

func (m *mockUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chatbot.ProcessMessageInput) (chatbot.Response, error) {
	m.scope, m.input = sc, input
	return m.resp, m.err
}

func (m *mockUseCase) IsLLMAvailable(ctx context.Context) bool { return m.llmModel != "" }
func (m *mockUseCase) LLMModelName() string                    { return m.llmModel }
func (m *mockUseCase) ClearHistory(ctx context.Context, userID string) {
	m.cleared = userID
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func serve(t *testing.T, uc chatbot.UseCase, method, target, body string, withUser bool) (int, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNopLogger()
	RegisterRoutes(r.Group("/chatbot"), New(l, uc), middleware.New(l, middleware.Config{}))

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if withUser {
		req.Header.Set(middleware.HeaderUserID, "alice")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestProcessMessage(t *testing.T) {
	due := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{resp: chatbot.Response{
		Intent:           chatbot.IntentQueryTasks,
		ActionExecuted:   true,
		ConfirmationText: "Vous avez 1 tâche(s) pour demain :\n• Appeler Marc",
		QueryResults: &chatbot.QueryResults{
			Items:      []model.Task{{ID: "t1", Title: "Appeler Marc", DueDate: &due, Priority: model.PriorityHigh, Status: model.TaskStatusPending}},
			TotalCount: 1,
		},
		UsedOllama:  true,
		OllamaModel: "llama3.2",
	}}

	code, env := serve(t, uc, http.MethodPost, "/chatbot/messages", `{"message":"Mes taches demain","organization_id":"acme"}`, true)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice", uc.scope.UserID)
	assert.Equal(t, "acme", uc.input.OrganizationID)

	var data processMessageResp
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "QUERY_TASKS", data.Intent)
	assert.True(t, data.UsedOllama)
	assert.Equal(t, "llama3.2", data.OllamaModel)
	require.NotNil(t, data.QueryResults)
	assert.Equal(t, 1, data.QueryResults.TotalCount)
	assert.Contains(t, string(env.Data), `"due_date":"2024-05-02"`)
}

func TestProcessMessage_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		withUser bool
		ucErr    error
		wantCode int
	}{
		{name: "missing user", body: `{"message":"x"}`, wantCode: http.StatusUnauthorized},
		{name: "empty message", body: `{"message":"  "}`, withUser: true, wantCode: http.StatusBadRequest},
		{name: "bad json", body: `{`, withUser: true, wantCode: http.StatusBadRequest},
		{name: "domain validation", body: `{"message":"x"}`, withUser: true, ucErr: workspace.ErrInvalidTimeRange, wantCode: http.StatusUnprocessableEntity},
		{name: "storage failure", body: `{"message":"x"}`, withUser: true, ucErr: errors.New("disk full"), wantCode: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := serve(t, &mockUseCase{err: tc.ucErr}, http.MethodPost, "/chatbot/messages", tc.body, tc.withUser)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}

func TestParse(t *testing.T) {
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{parsed: chatbot.ParsedMessage{
		Intent:     chatbot.IntentCreateEvent,
		Date:       &day,
		Time:       &model.TimeOfDay{Hour: 14},
		Priority:   model.PriorityMedium,
		Confidence: 0.8,
	}}

	code, env := serve(t, uc, http.MethodPost, "/chatbot/parse", `{"message":"Rdv demain a 14h"}`, true)
	require.Equal(t, http.StatusOK, code)

	var data parseResp
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "CREATE_EVENT", data.Intent)
	assert.Equal(t, "14:00", data.Time)
	assert.InDelta(t, 0.8, data.Confidence, 1e-9)
	assert.Contains(t, string(env.Data), `"extracted_date":"2024-05-02"`)
}

func TestStatusAndHistory(t *testing.T) {
	uc := &mockUseCase{llmModel: "llama3.2"}

	code, env := serve(t, uc, http.MethodGet, "/chatbot/status", "", true)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"llm_available":true,"llm_model":"llama3.2"}`, string(env.Data))

	code, _ = serve(t, uc, http.MethodDelete, "/chatbot/history", "", true)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice", uc.cleared)
}
