package model

import "time"

// Goal is a longer-term objective.
type Goal struct {
	ID             string
	UserID         string
	OrganizationID string
	Title          string
	Description    string
	TargetDate     *time.Time
	CreatedAt      time.Time
}
