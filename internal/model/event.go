package model

import "time"

// Event is a calendar entry.
type Event struct {
	ID             string
	UserID         string
	OrganizationID string
	Title          string
	Description    string
	StartsAt       time.Time
	EndsAt         time.Time
	CalendarLink   string // Google Calendar deep link (may be empty)
	CreatedAt      time.Time
}
