package timesheet

import (
	"context"

	"github.com/hrworks/hr-backend-go/internal/domain/auth"
)

type TimesheetService interface {
	Create(ctx context.Context, principal auth.Principal, req CreateTimesheetRequest) (TimesheetResponse, error)
	GetByID(ctx context.Context, principal auth.Principal, id string) (TimesheetResponse, error)
	Update(ctx context.Context, principal auth.Principal, req UpdateTimesheetRequest) (TimesheetResponse, error)
	Delete(ctx context.Context, principal auth.Principal, id string) error

	ListOwn(ctx context.Context, principal auth.Principal, filter TimesheetFilter) ([]TimesheetResponse, error)
	ListTeam(ctx context.Context, principal auth.Principal, filter TimesheetFilter) ([]TimesheetResponse, error)
	ListAll(ctx context.Context, principal auth.Principal, filter TimesheetFilter) ([]TimesheetResponse, error)

	Approve(ctx context.Context, principal auth.Principal, req DecisionRequest) (TimesheetResponse, error)
	Reject(ctx context.Context, principal auth.Principal, req DecisionRequest) (TimesheetResponse, error)

	Summarize(ctx context.Context, principal auth.Principal, filter TimesheetFilter) (SummaryResponse, error)
}
