package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hrworks/hr-backend-go/internal/domain/timesheet"
	"github.com/hrworks/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrworks/hr-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Summarize(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// parseTimesheetFilter reads the shared list query parameters.
func parseTimesheetFilter(r *http.Request) timesheet.TimesheetFilter {
	filter := timesheet.TimesheetFilter{}

	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if projectID := r.URL.Query().Get("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		if status, ok := timesheet.ParseStatus(statusStr); ok {
			filter.Status = &status
		}
	}
	if from := r.URL.Query().Get("date_from"); from != "" {
		if parsed, err := time.Parse("2006-01-02", from); err == nil {
			filter.DateFrom = &parsed
		}
	}
	if to := r.URL.Query().Get("date_to"); to != "" {
		if parsed, err := time.Parse("2006-01-02", to); err == nil {
			filter.DateTo = &parsed
		}
	}

	return filter
}

// Create implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq timesheet.CreateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateTimesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("CreateTimesheet validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	timesheetResponse, err := h.timesheetService.Create(r.Context(), principal, createReq)
	if err != nil {
		slog.Error("CreateTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Timesheet created successfully", "timesheet_id", timesheetResponse.ID)
	response.Created(w, "Timesheet created successfully", timesheetResponse)
}

// GetByID implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	timesheetResponse, err := h.timesheetService.GetByID(r.Context(), principal, id)
	if err != nil {
		slog.Error("GetTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheetResponse)
}

// Update implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq timesheet.UpdateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateTimesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("UpdateTimesheet validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	timesheetResponse, err := h.timesheetService.Update(r.Context(), principal, updateReq)
	if err != nil {
		slog.Error("UpdateTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet updated successfully", timesheetResponse)
}

// Delete implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.timesheetService.Delete(r.Context(), principal, id); err != nil {
		slog.Error("DeleteTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet deleted successfully", nil)
}

// ListOwn implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	timesheets, err := h.timesheetService.ListOwn(r.Context(), principal, parseTimesheetFilter(r))
	if err != nil {
		slog.Error("ListOwnTimesheets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheets)
}

// ListAll implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	timesheets, err := h.timesheetService.ListAll(r.Context(), principal, parseTimesheetFilter(r))
	if err != nil {
		slog.Error("ListAllTimesheets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheets)
}

// Summarize implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Summarize(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.timesheetService.Summarize(r.Context(), principal, parseTimesheetFilter(r))
	if err != nil {
		slog.Error("SummarizeTimesheets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
