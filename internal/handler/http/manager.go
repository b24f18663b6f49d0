package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrworks/hr-backend-go/internal/domain/timesheet"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/hrworks/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrworks/hr-backend-go/internal/handler/http/response"
)

// ManagerHandler groups the manager-facing routes: the team roster and
// the approval queue.
type ManagerHandler interface {
	ListTeam(w http.ResponseWriter, r *http.Request)
	ListTeamTimesheets(w http.ResponseWriter, r *http.Request)
	ListPendingTimesheets(w http.ResponseWriter, r *http.Request)
	ListTimesheetsByStatus(w http.ResponseWriter, r *http.Request)
	ListEmployeeTimesheets(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type ManagerHandlerImpl struct {
	userService      user.UserService
	timesheetService timesheet.TimesheetService
}

func NewManagerHandler(userService user.UserService, timesheetService timesheet.TimesheetService) ManagerHandler {
	return &ManagerHandlerImpl{
		userService:      userService,
		timesheetService: timesheetService,
	}
}

// ListTeam implements ManagerHandler.
func (h *ManagerHandlerImpl) ListTeam(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	team, err := h.userService.ListTeam(r.Context(), principal.ID)
	if err != nil {
		slog.Error("ListTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, team)
}

// ListTeamTimesheets implements ManagerHandler.
func (h *ManagerHandlerImpl) ListTeamTimesheets(w http.ResponseWriter, r *http.Request) {
	h.listTeamWith(w, r, parseTimesheetFilter(r))
}

// listTeamWith runs the team listing with a pre-shaped filter.
func (h *ManagerHandlerImpl) listTeamWith(w http.ResponseWriter, r *http.Request, filter timesheet.TimesheetFilter) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	timesheets, err := h.timesheetService.ListTeam(r.Context(), principal, filter)
	if err != nil {
		slog.Error("ListTeamTimesheets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheets)
}

// ListPendingTimesheets implements ManagerHandler. Shorthand for the
// approval queue.
func (h *ManagerHandlerImpl) ListPendingTimesheets(w http.ResponseWriter, r *http.Request) {
	pending := timesheet.StatusPending
	filter := parseTimesheetFilter(r)
	filter.Status = &pending
	h.listTeamWith(w, r, filter)
}

// ListTimesheetsByStatus implements ManagerHandler.
func (h *ManagerHandlerImpl) ListTimesheetsByStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := timesheet.ParseStatus(chi.URLParam(r, "status"))
	if !ok {
		response.BadRequest(w, "Unknown timesheet status", nil)
		return
	}

	filter := parseTimesheetFilter(r)
	filter.Status = &status
	h.listTeamWith(w, r, filter)
}

// ListEmployeeTimesheets implements ManagerHandler. The listing query
// intersects with the manager's team, so an employee outside it simply
// yields an empty result.
func (h *ManagerHandlerImpl) ListEmployeeTimesheets(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	filter := parseTimesheetFilter(r)
	filter.UserID = &employeeID
	h.listTeamWith(w, r, filter)
}

func (h *ManagerHandlerImpl) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var decisionReq timesheet.DecisionRequest
	// The note body is optional for approvals.
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&decisionReq); err != nil {
			slog.Error("DecideTimesheet decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	decisionReq.ID = chi.URLParam(r, "id")

	if err := decisionReq.Validate(); err != nil {
		slog.Error("DecideTimesheet validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	var timesheetResponse timesheet.TimesheetResponse
	if approve {
		timesheetResponse, err = h.timesheetService.Approve(r.Context(), principal, decisionReq)
	} else {
		timesheetResponse, err = h.timesheetService.Reject(r.Context(), principal, decisionReq)
	}
	if err != nil {
		slog.Error("DecideTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if approve {
		response.SuccessWithMessage(w, "Timesheet approved", timesheetResponse)
	} else {
		response.SuccessWithMessage(w, "Timesheet rejected", timesheetResponse)
	}
}

// Approve implements ManagerHandler.
func (h *ManagerHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

// Reject implements ManagerHandler.
func (h *ManagerHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}
