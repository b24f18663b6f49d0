package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/hrworks/hr-backend-go/internal/domain/assignment"
	"github.com/hrworks/hr-backend-go/internal/domain/auth"
	"github.com/hrworks/hr-backend-go/internal/domain/notification"
	"github.com/hrworks/hr-backend-go/internal/domain/timesheet"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/hrworks/hr-backend-go/internal/pkg/database"
	"github.com/hrworks/hr-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type TimesheetServiceImpl struct {
	db *database.DB
	timesheet.TimesheetRepository
	user.UserRepository
	assignment.AssignmentRepository
	notification.NotificationService
}

func NewTimesheetService(
	db *database.DB,
	timesheetRepository timesheet.TimesheetRepository,
	userRepository user.UserRepository,
	assignmentRepository assignment.AssignmentRepository,
	notificationService notification.NotificationService,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:                   db,
		TimesheetRepository:  timesheetRepository,
		UserRepository:       userRepository,
		AssignmentRepository: assignmentRepository,
		NotificationService:  notificationService,
	}
}

// Create implements timesheet.TimesheetService. Employees and managers
// log their own hours against projects they are assigned to; admins may
// backfill entries for any user.
func (s *TimesheetServiceImpl) Create(ctx context.Context, principal auth.Principal, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ownerID := principal.ID
	if req.UserID != "" {
		ownerID = req.UserID
	}

	if !timesheet.CanSubmitFor(principal, ownerID) {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetModifyDenied
	}

	owner, err := s.UserRepository.GetByID(ctx, ownerID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	// Only employees are gated on assignment; managers and admins may
	// log hours against any project.
	if owner.IsEmployee() {
		assigned, err := s.AssignmentRepository.IsAssigned(ctx, ownerID, req.ProjectID)
		if err != nil {
			return timesheet.TimesheetResponse{}, fmt.Errorf("failed to check assignment: %w", err)
		}
		if !assigned {
			return timesheet.TimesheetResponse{}, timesheet.ErrNotAssignedToProject
		}
	}

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("parse work_date: %w", err)
	}

	exists, err := s.TimesheetRepository.Exists(ctx, ownerID, req.ProjectID, workDate)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to check duplicate: %w", err)
	}
	if exists {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetExists
	}

	created, err := s.TimesheetRepository.Create(ctx, timesheet.Timesheet{
		UserID:      ownerID,
		ProjectID:   req.ProjectID,
		WorkDate:    workDate,
		Hours:       req.Hours,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
		Status:      timesheet.StatusPending,
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	s.NotificationService.NotifyTimesheetSubmitted(ctx, owner.ManagerID, owner.Name, created.ID)

	created.UserName = owner.Name
	return timesheet.ToResponse(created), nil
}

// GetByID implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetByID(ctx context.Context, principal auth.Principal, id string) (timesheet.TimesheetResponse, error) {
	ts, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	owner, err := s.UserRepository.GetByID(ctx, ts.UserID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if !timesheet.CanView(principal, ts, owner) {
		// Hidden entries read as missing so their existence leaks nothing.
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotFound
	}

	return timesheet.ToResponse(ts), nil
}

// Update implements timesheet.TimesheetService. Only the owner may
// edit, and only while the entry is pending.
func (s *TimesheetServiceImpl) Update(ctx context.Context, principal auth.Principal, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	ts, err := s.TimesheetRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if !ts.IsOwnedBy(principal.ID) && !principal.IsAdmin() {
		owner, err := s.UserRepository.GetByID(ctx, ts.UserID)
		if err != nil {
			return timesheet.TimesheetResponse{}, err
		}
		if !timesheet.CanView(principal, ts, owner) {
			return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetModifyDenied
	}

	if !ts.CanBeModified() {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotPending
	}

	if req.ProjectID != nil && *req.ProjectID != ts.ProjectID {
		owner, err := s.UserRepository.GetByID(ctx, ts.UserID)
		if err != nil {
			return timesheet.TimesheetResponse{}, err
		}
		if owner.IsEmployee() {
			assigned, err := s.AssignmentRepository.IsAssigned(ctx, ts.UserID, *req.ProjectID)
			if err != nil {
				return timesheet.TimesheetResponse{}, fmt.Errorf("failed to check assignment: %w", err)
			}
			if !assigned {
				return timesheet.TimesheetResponse{}, timesheet.ErrNotAssignedToProject
			}
		}
	}

	if req.WorkDate != nil || req.ProjectID != nil {
		projectID := ts.ProjectID
		if req.ProjectID != nil {
			projectID = *req.ProjectID
		}
		workDate := ts.WorkDate
		if req.WorkDate != nil {
			workDate, err = time.Parse("2006-01-02", *req.WorkDate)
			if err != nil {
				return timesheet.TimesheetResponse{}, fmt.Errorf("parse work_date: %w", err)
			}
		}
		if projectID != ts.ProjectID || !workDate.Equal(ts.WorkDate) {
			exists, err := s.TimesheetRepository.Exists(ctx, ts.UserID, projectID, workDate)
			if err != nil {
				return timesheet.TimesheetResponse{}, fmt.Errorf("failed to check duplicate: %w", err)
			}
			if exists {
				return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetExists
			}
		}
	}

	if err := s.TimesheetRepository.Update(ctx, req); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	updated, err := s.TimesheetRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return timesheet.ToResponse(updated), nil
}

// Delete implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Delete(ctx context.Context, principal auth.Principal, id string) error {
	ts, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !ts.IsOwnedBy(principal.ID) && !principal.IsAdmin() {
		owner, err := s.UserRepository.GetByID(ctx, ts.UserID)
		if err != nil {
			return err
		}
		if !timesheet.CanView(principal, ts, owner) {
			return timesheet.ErrTimesheetNotFound
		}
		return timesheet.ErrTimesheetModifyDenied
	}

	if !ts.CanBeModified() {
		return timesheet.ErrTimesheetNotPending
	}

	return s.TimesheetRepository.Delete(ctx, id)
}

// ListOwn implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListOwn(ctx context.Context, principal auth.Principal, filter timesheet.TimesheetFilter) ([]timesheet.TimesheetResponse, error) {
	filter.UserID = &principal.ID

	timesheets, err := s.TimesheetRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toResponses(timesheets), nil
}

// ListTeam implements timesheet.TimesheetService. Scope is the
// principal's direct reports.
func (s *TimesheetServiceImpl) ListTeam(ctx context.Context, principal auth.Principal, filter timesheet.TimesheetFilter) ([]timesheet.TimesheetResponse, error) {
	if !principal.IsManager() && !principal.IsAdmin() {
		return nil, user.ErrManagerAccessRequired
	}

	team, err := s.UserRepository.ListByManager(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(team))
	for _, member := range team {
		userIDs = append(userIDs, member.ID)
	}

	timesheets, err := s.TimesheetRepository.ListByUsers(ctx, userIDs, filter)
	if err != nil {
		return nil, err
	}

	return toResponses(timesheets), nil
}

// ListAll implements timesheet.TimesheetService. Admin and HR only.
func (s *TimesheetServiceImpl) ListAll(ctx context.Context, principal auth.Principal, filter timesheet.TimesheetFilter) ([]timesheet.TimesheetResponse, error) {
	if !user.HasPermission(principal.Role, user.PermissionTimesheetViewAll) {
		return nil, timesheet.ErrTimesheetViewDenied
	}

	timesheets, err := s.TimesheetRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toResponses(timesheets), nil
}

// Approve implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Approve(ctx context.Context, principal auth.Principal, req timesheet.DecisionRequest) (timesheet.TimesheetResponse, error) {
	return s.decide(ctx, principal, req, timesheet.StatusApproved)
}

// Reject implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Reject(ctx context.Context, principal auth.Principal, req timesheet.DecisionRequest) (timesheet.TimesheetResponse, error) {
	return s.decide(ctx, principal, req, timesheet.StatusRejected)
}

func (s *TimesheetServiceImpl) decide(ctx context.Context, principal auth.Principal, req timesheet.DecisionRequest, status timesheet.Status) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	var decided timesheet.Timesheet

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		ts, err := s.TimesheetRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		owner, err := s.UserRepository.GetByID(txCtx, ts.UserID)
		if err != nil {
			return err
		}

		if !timesheet.CanDecide(principal, ts, owner) {
			if ts.IsOwnedBy(principal.ID) {
				return timesheet.ErrSelfApproval
			}
			return timesheet.ErrApprovalDenied
		}

		if ts.Status.IsTerminal() {
			return timesheet.ErrTimesheetNotPending
		}

		// The repository re-checks PENDING inside the UPDATE, so a
		// concurrent decision that got there first surfaces as a
		// conflict rather than a silent overwrite.
		updated, err := s.TimesheetRepository.SetStatus(txCtx, req.ID, status, principal.ID, req.Note)
		if err != nil {
			return fmt.Errorf("failed to set status: %w", err)
		}
		if !updated {
			return timesheet.ErrTimesheetNotPending
		}

		decided, err = s.TimesheetRepository.GetByID(txCtx, req.ID)
		return err
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	s.NotificationService.NotifyTimesheetDecided(ctx, decided.UserID, status == timesheet.StatusApproved, decided.ID)

	return timesheet.ToResponse(decided), nil
}

// Summarize implements timesheet.TimesheetService. Non-privileged
// callers only see their own aggregate.
func (s *TimesheetServiceImpl) Summarize(ctx context.Context, principal auth.Principal, filter timesheet.TimesheetFilter) (timesheet.SummaryResponse, error) {
	if !user.HasPermission(principal.Role, user.PermissionTimesheetViewAll) {
		filter.UserID = &principal.ID
	}
	return s.TimesheetRepository.Summarize(ctx, filter)
}

func toResponses(timesheets []timesheet.Timesheet) []timesheet.TimesheetResponse {
	responses := make([]timesheet.TimesheetResponse, 0, len(timesheets))
	for _, t := range timesheets {
		responses = append(responses, timesheet.ToResponse(t))
	}
	return responses
}
