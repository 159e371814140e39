package model

import "time"

// Note is free-form text. Notes without an organization are personal.
type Note struct {
	ID             string
	UserID         string
	OrganizationID string
	Title          string
	Content        string
	CreatedAt      time.Time
}
