package assignment

import (
	"time"

	"github.com/hrworks/hr-backend-go/internal/pkg/validator"
)

// MaxAllocatedHours caps the weekly allocation on a single project.
const MaxAllocatedHours = 168.0

type CreateAssignmentRequest struct {
	UserID         string   `json:"user_id"`
	ProjectID      string   `json:"project_id"`
	Role           *string  `json:"role,omitempty"`
	AllocatedHours *float64 `json:"allocated_hours,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	} else if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id must be a valid UUID"})
	}

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "project_id is required"})
	} else if !validator.IsValidUUID(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "project_id must be a valid UUID"})
	}

	if r.Role != nil && len(*r.Role) > 50 {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must not exceed 50 characters"})
	}

	if r.AllocatedHours != nil && (*r.AllocatedHours <= 0 || *r.AllocatedHours > MaxAllocatedHours) {
		errs = append(errs, validator.ValidationError{Field: "allocated_hours", Message: "allocated_hours must be between 0 and 168"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentFilter struct {
	UserID    *string
	ProjectID *string
	ManagerID *string
}

type AssignmentResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name,omitempty"`
	ProjectID      string    `json:"project_id"`
	ProjectName    string    `json:"project_name,omitempty"`
	ProjectCode    string    `json:"project_code,omitempty"`
	Role           *string   `json:"role,omitempty"`
	AllocatedHours *float64  `json:"allocated_hours,omitempty"`
	AssignedBy     *string   `json:"assigned_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		UserName:       a.UserName,
		ProjectID:      a.ProjectID,
		ProjectName:    a.ProjectName,
		ProjectCode:    a.ProjectCode,
		Role:           a.Role,
		AllocatedHours: a.AllocatedHours,
		AssignedBy:     a.AssignedBy,
		CreatedAt:      a.CreatedAt,
	}
}
