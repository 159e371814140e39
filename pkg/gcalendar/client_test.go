package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"productivity-assistant/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

const desktopCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func testClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewFromJSON(t *testing.T) {
	ctx := context.Background()

	if _, err := gcalendar.NewFromJSON(ctx, []byte(`{"broken":true}`), nil); err == nil {
		t.Errorf("expected unsupported credentials error")
	}

	if _, err := gcalendar.NewFromJSON(ctx, []byte(desktopCreds), nil); !errors.Is(err, gcalendar.ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}

	if _, err := gcalendar.NewFromJSON(ctx, []byte(desktopCreds), []byte(`{"broken": true`)); err == nil {
		t.Errorf("expected token parse failure")
	}

	token := []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`)
	if _, err := gcalendar.NewFromJSON(ctx, []byte(desktopCreds), token); err != nil {
		t.Errorf("expected desktop credentials with token to work: %v", err)
	}
}

func TestNew_FromFiles(t *testing.T) {
	dir := t.TempDir()
	creds := filepath.Join(dir, "credentials.json")
	token := filepath.Join(dir, "token.json")
	if err := os.WriteFile(creds, []byte(desktopCreds), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := gcalendar.New(context.Background(), gcalendar.Config{CredentialsPath: filepath.Join(dir, "missing.json")}); err == nil {
		t.Errorf("expected missing credentials error")
	}
	if _, err := gcalendar.New(context.Background(), gcalendar.Config{CredentialsPath: creds, TokenPath: token}); !errors.Is(err, gcalendar.ErrMissingToken) {
		t.Errorf("expected ErrMissingToken for absent token file, got %v", err)
	}

	if err := os.WriteFile(token, []byte(`{"access_token":"dummy","token_type":"Bearer"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := gcalendar.New(context.Background(), gcalendar.Config{CredentialsPath: creds, TokenPath: token}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateEvent(t *testing.T) {
	start := time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC)

	t.Run("inserts into the default calendar", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			var body struct {
				Summary string `json:"summary"`
				Start   struct {
					DateTime string `json:"dateTime"`
					TimeZone string `json:"timeZone"`
				} `json:"start"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Summary != "Point équipe" || body.Start.TimeZone != "Europe/Paris" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{"id": "event-123", "summary": "Point équipe", "htmlLink": "https://calendar.google.com/event-uri"}`))
		})

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Point équipe",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Timezone:  "Europe/Paris",
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected event: %+v", event)
		}
	})

	t.Run("api error", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "team",
			Summary:    "x",
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
		})
		if err == nil {
			t.Fatalf("expected api error")
		}
	})
}
