package response

import (
	"errors"
	"net/http"

	"github.com/hrworks/hr-backend-go/internal/domain/assignment"
	"github.com/hrworks/hr-backend-go/internal/domain/auth"
	"github.com/hrworks/hr-backend-go/internal/domain/notification"
	"github.com/hrworks/hr-backend-go/internal/domain/project"
	"github.com/hrworks/hr-backend-go/internal/domain/timesheet"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/hrworks/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrGoogleLoginDisabled):
		BadRequest(w, "Google login is not configured", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, user.ErrManagerRoleRequired):
		BadRequest(w, "Assignee must have the MANAGER role", nil)
	case errors.Is(err, user.ErrSelfManagement):
		BadRequest(w, "A user cannot be their own manager", nil)
	case errors.Is(err, user.ErrEmployeeRoleRequired):
		BadRequest(w, "Target must be an employee or manager", nil)
	case errors.Is(err, user.ErrManagerHasEmployees):
		Conflict(w, "Manager still has active reports")
	case errors.Is(err, user.ErrUserHasDependents):
		Conflict(w, "User still has reports, timesheets or assignments")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrHRPrivilegeRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrEmployeeAccessForbidden):
		Forbidden(w, err.Error())

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectCodeExists):
		Conflict(w, "Project code already exists")
	case errors.Is(err, project.ErrProjectInactive):
		Conflict(w, "Project is not open for work")
	case errors.Is(err, project.ErrProjectHasWork):
		Conflict(w, "Project has assignments or timesheets")
	case errors.Is(err, project.ErrProjectEditDenied):
		Forbidden(w, "Not allowed to edit this project")

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrAssignmentExists):
		Conflict(w, "User is already assigned to this project")
	case errors.Is(err, assignment.ErrAssigneeNotEmployee):
		BadRequest(w, "Only employees can be assigned to projects", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrTimesheetExists):
		Conflict(w, "Timesheet already exists for this date and project")
	case errors.Is(err, timesheet.ErrTimesheetNotPending):
		Conflict(w, "Timesheet has already been decided")
	case errors.Is(err, timesheet.ErrTimesheetViewDenied):
		Forbidden(w, "Not allowed to view this timesheet")
	case errors.Is(err, timesheet.ErrTimesheetModifyDenied):
		Forbidden(w, "Not allowed to modify this timesheet")
	case errors.Is(err, timesheet.ErrApprovalDenied):
		Forbidden(w, "Not allowed to decide this timesheet")
	case errors.Is(err, timesheet.ErrSelfApproval):
		Forbidden(w, "Cannot decide your own timesheet")
	case errors.Is(err, timesheet.ErrNotAssignedToProject):
		Forbidden(w, "User is not assigned to this project")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
