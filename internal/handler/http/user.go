package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/hrworks/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrworks/hr-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AssignManager(w http.ResponseWriter, r *http.Request)
	UnassignManager(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("CreateUser validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	userResponse, err := h.userService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User created successfully", "user_id", userResponse.ID)
	response.Created(w, "User created successfully", userResponse)
}

// GetByID implements UserHandler.
func (h *UserHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	userResponse, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("GetUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, userResponse)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("UpdateUser validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	userResponse, err := h.userService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", userResponse)
}

// GetProfile implements UserHandler.
func (h *UserHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	userResponse, err := h.userService.GetByID(r.Context(), principal.ID)
	if err != nil {
		slog.Error("GetProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, userResponse)
}

// UpdateProfile implements UserHandler.
func (h *UserHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("UpdateProfile validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	userResponse, err := h.userService.UpdateProfile(r.Context(), principal.ID, updateReq)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", userResponse)
}

// Deactivate implements UserHandler.
func (h *UserHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.userService.Deactivate(r.Context(), id); err != nil {
		slog.Error("DeactivateUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deactivated successfully", nil)
}

// Activate implements UserHandler.
func (h *UserHandlerImpl) Activate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.userService.Activate(r.Context(), id); err != nil {
		slog.Error("ActivateUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User activated successfully", nil)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.userService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted successfully", nil)
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := user.UserFilter{}

	if role := r.URL.Query().Get("role"); role != "" {
		filter.Role = &role
	}
	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}
	if active := r.URL.Query().Get("active"); active != "" {
		isActive := active == "true"
		filter.Active = &isActive
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	users, err := h.userService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListUsers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// AssignManager implements UserHandler.
func (h *UserHandlerImpl) AssignManager(w http.ResponseWriter, r *http.Request) {
	var assignReq user.AssignManagerRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("AssignManager decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	assignReq.EmployeeID = chi.URLParam(r, "id")

	if err := assignReq.Validate(); err != nil {
		slog.Error("AssignManager validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	userResponse, err := h.userService.AssignManager(r.Context(), assignReq)
	if err != nil {
		slog.Error("AssignManager service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manager assigned successfully", userResponse)
}

// UnassignManager implements UserHandler.
func (h *UserHandlerImpl) UnassignManager(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	userResponse, err := h.userService.UnassignManager(r.Context(), id)
	if err != nil {
		slog.Error("UnassignManager service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manager unassigned successfully", userResponse)
}

// ListDepartments implements UserHandler.
func (h *UserHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.userService.ListDepartments(r.Context())
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}
