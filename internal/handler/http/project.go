package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrworks/hr-backend-go/internal/domain/project"
	"github.com/hrworks/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrworks/hr-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("CreateProject validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	projectResponse, err := h.projectService.Create(r.Context(), principal, createReq)
	if err != nil {
		slog.Error("CreateProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Project created successfully", "project_id", projectResponse.ID)
	response.Created(w, "Project created successfully", projectResponse)
}

// GetByID implements ProjectHandler.
func (h *ProjectHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	projectResponse, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("GetProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, projectResponse)
}

// Update implements ProjectHandler.
func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq project.UpdateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("UpdateProject validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	projectResponse, err := h.projectService.Update(r.Context(), principal, updateReq)
	if err != nil {
		slog.Error("UpdateProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", projectResponse)
}

// Delete implements ProjectHandler.
func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}

// List implements ProjectHandler.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := project.ProjectFilter{}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		if status, ok := project.ParseStatus(statusStr); ok {
			filter.Status = &status
		}
	}
	if managerID := r.URL.Query().Get("manager_id"); managerID != "" {
		filter.ManagerID = &managerID
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	projects, err := h.projectService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListProjects service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}
