package gcalendar

import "time"

// Config locates the Google credentials on disk.
type Config struct {
	CredentialsPath string
	TokenPath       string // only for desktop OAuth credentials
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string // "primary" when empty
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Paris"
}

// Event is the part of a created Google Calendar event callers use.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
