package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	out, err := run(t, "parse", "--tz", "UTC", "Rdv", "demain", "a", "14h")
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &msg))
	assert.Equal(t, "CREATE_EVENT", msg["intent"])
	assert.NotNil(t, msg["extracted_date"])
	assert.Equal(t, "14:00", msg["extracted_time"])
}

func TestParseCmd_RequiresMessage(t *testing.T) {
	_, err := run(t, "parse")
	assert.Error(t, err)
}

func TestSendCmd(t *testing.T) {
	out, err := run(t, "send", "--db", ":memory:", "--no-llm", "--org", "acme", "Creer une tache: preparer la demo")
	require.NoError(t, err)
	assert.Contains(t, out, "[CREATE_TASK via règles]")
	assert.Contains(t, out, "Tâche « Preparer la demo » créée")
	assert.Contains(t, out, "id: ")
}

func TestSendCmd_OrganizationRequired(t *testing.T) {
	out, err := run(t, "send", "--db", ":memory:", "--no-llm", "Creer une tache: preparer la demo")
	require.NoError(t, err)
	assert.Contains(t, out, "organisation")
}

func TestHistoryClearCmd(t *testing.T) {
	var gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/chatbot/history", r.URL.Path)
		gotUser = r.Header.Get("X-User-ID")
		w.Write([]byte(`{"error_code":0,"message":"Success"}`))
	}))
	defer srv.Close()

	out, err := run(t, "history", "clear", "--server", srv.URL, "--user", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", gotUser)
	assert.Contains(t, out, "history cleared for alice")
}

func TestHistoryClearCmd_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := run(t, "history", "clear", "--server", srv.URL)
	assert.ErrorContains(t, err, "401")
}

func TestCalendarAuthCmd_MissingCredentials(t *testing.T) {
	_, err := run(t, "calendar", "auth", "--credentials", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read credentials")
}
