package timesheet

import (
	"context"
	"time"
)

type TimesheetRepository interface {
	GetByID(ctx context.Context, id string) (Timesheet, error)
	Create(ctx context.Context, newTimesheet Timesheet) (Timesheet, error)
	Update(ctx context.Context, req UpdateTimesheetRequest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TimesheetFilter) ([]Timesheet, error)
	ListByUsers(ctx context.Context, userIDs []string, filter TimesheetFilter) ([]Timesheet, error)
	Exists(ctx context.Context, userID, projectID string, workDate time.Time) (bool, error)

	// SetStatus performs the pending-to-decided transition. It must
	// only touch rows still in PENDING and report whether a row was
	// updated, so concurrent deciders race safely on the same entry.
	SetStatus(ctx context.Context, id string, status Status, decidedBy string, note *string) (bool, error)

	Summarize(ctx context.Context, filter TimesheetFilter) (SummaryResponse, error)
}
