package assignment

import "time"

type Assignment struct {
	ID             string
	UserID         string
	ProjectID      string
	Role           *string
	AllocatedHours *float64
	AssignedBy     *string
	CreatedAt      time.Time

	// Join fields populated on list queries.
	UserName    string
	ProjectName string
	ProjectCode string
}
