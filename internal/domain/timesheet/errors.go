package timesheet

import "errors"

var (
	ErrTimesheetNotFound     = errors.New("timesheet not found")
	ErrTimesheetExists       = errors.New("timesheet already exists for this user, project and date")
	ErrTimesheetNotPending   = errors.New("timesheet has already been decided")
	ErrTimesheetViewDenied   = errors.New("not allowed to view this timesheet")
	ErrTimesheetModifyDenied = errors.New("not allowed to modify this timesheet")
	ErrApprovalDenied        = errors.New("not allowed to decide this timesheet")
	ErrSelfApproval          = errors.New("cannot decide your own timesheet")
	ErrNotAssignedToProject  = errors.New("user is not assigned to this project")
)
