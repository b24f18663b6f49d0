package timesheet

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// IsTerminal reports whether the status is a decision state. A decided
// timesheet never transitions again.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Timesheet struct {
	ID          string
	UserID      string
	ProjectID   string
	WorkDate    time.Time
	Hours       float64
	StartTime   *string
	EndTime     *string
	Description *string
	Status      Status
	DecidedBy   *string
	DecidedAt   *time.Time
	DecisionNote *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields populated on list queries.
	UserName    string
	ProjectName string
	ProjectCode string
}

// CanBeModified reports whether the entry is still open for edits by
// its owner. Only pending entries are mutable.
func (t Timesheet) CanBeModified() bool {
	return t.Status == StatusPending
}

func (t Timesheet) IsOwnedBy(userID string) bool {
	return t.UserID == userID
}
