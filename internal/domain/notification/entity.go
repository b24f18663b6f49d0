package notification

import "time"

type Type string

const (
	TypeTimesheetSubmitted Type = "timesheet_submitted"
	TypeTimesheetApproved  Type = "timesheet_approved"
	TypeTimesheetRejected  Type = "timesheet_rejected"
)

type Notification struct {
	ID        string
	UserID    string
	Type      Type
	Title     string
	Message   string
	RefID     *string
	Read      bool
	CreatedAt time.Time
}
