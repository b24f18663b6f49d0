package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrworks/hr-backend-go/internal/domain/assignment"
	"github.com/hrworks/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrworks/hr-backend-go/internal/handler/http/response"
)

type AssignmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AssignmentHandlerImpl struct {
	assignmentService assignment.AssignmentService
}

func NewAssignmentHandler(assignmentService assignment.AssignmentService) AssignmentHandler {
	return &AssignmentHandlerImpl{assignmentService: assignmentService}
}

// Create implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq assignment.CreateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("CreateAssignment validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	assignmentResponse, err := h.assignmentService.Create(r.Context(), principal, createReq)
	if err != nil {
		slog.Error("CreateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Assignment created successfully", "assignment_id", assignmentResponse.ID)
	response.Created(w, "Assignment created successfully", assignmentResponse)
}

// Delete implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.assignmentService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment deleted successfully", nil)
}

// List implements AssignmentHandler.
func (h *AssignmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := assignment.AssignmentFilter{}

	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if projectID := r.URL.Query().Get("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}
	if managerID := r.URL.Query().Get("manager_id"); managerID != "" {
		filter.ManagerID = &managerID
	}

	assignments, err := h.assignmentService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListAssignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}
