package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

// ErrMissingToken is returned for desktop OAuth credentials without a stored token.
var ErrMissingToken = errors.New("gcalendar: OAuth desktop credentials need a token file")

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// New builds a Client from cfg. Service account credentials are used as is;
// desktop OAuth credentials also need cfg.TokenPath.
func New(ctx context.Context, cfg Config) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var token []byte
	if cfg.TokenPath != "" {
		if token, err = os.ReadFile(cfg.TokenPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read token file: %w", err)
		}
	}
	return NewFromJSON(ctx, data, token)
}

// NewFromJSON builds a Client from raw credentials and an optional OAuth token.
func NewFromJSON(ctx context.Context, credentialsJSON, tokenJSON []byte) (*Client, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope); err == nil {
		return newClient(ctx, option.WithTokenSource(jwt.TokenSource(ctx)))
	}

	conf, err := OAuthConfig(credentialsJSON)
	if err != nil {
		return nil, err
	}
	if len(tokenJSON) == 0 {
		return nil, ErrMissingToken
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenJSON, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return newClient(ctx, option.WithTokenSource(conf.TokenSource(ctx, &tok)))
}

// NewFromHTTP builds a Client on a pre-configured HTTP client.
func NewFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent inserts a timed event and returns its identifiers.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       eventTime(req.StartTime, req.Timezone),
		End:         eventTime(req.EndTime, req.Timezone),
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func eventTime(t time.Time, tz string) *calendar.EventDateTime {
	return &calendar.EventDateTime{
		DateTime: t.Format(time.RFC3339),
		TimeZone: tz,
	}
}
