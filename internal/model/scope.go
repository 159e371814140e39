package model

// Scope identifies the caller of an operation.
type Scope struct {
	UserID         string
	Username       string
	OrganizationID string // empty for personal scope
}

// HasOrganization reports whether the scope targets an organization.
func (s Scope) HasOrganization() bool {
	return s.OrganizationID != ""
}
