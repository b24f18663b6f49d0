package project

import "time"

type Status string

const (
	StatusPlanned   Status = "PLANNED"
	StatusActive    Status = "ACTIVE"
	StatusOnHold    Status = "ON_HOLD"
	StatusCompleted Status = "COMPLETED"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPlanned, StatusActive, StatusOnHold, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

// IsOpen reports whether the project accepts new assignments and
// timesheet entries.
func (s Status) IsOpen() bool {
	return s == StatusActive
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), true
	}
	return "", false
}

type Project struct {
	ID          string
	Name        string
	Code        string
	Description *string
	Status      Status
	Priority    *Priority
	Budget      *float64
	StartDate   *time.Time
	EndDate     *time.Time
	ManagerID   *string
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsManagedBy reports whether userID is the assigned project manager.
func (p Project) IsManagedBy(userID string) bool {
	return p.ManagerID != nil && *p.ManagerID == userID
}
