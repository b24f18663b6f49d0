package project

import (
	"time"

	"github.com/hrworks/hr-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Description *string  `json:"description,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	ManagerID   *string  `json:"manager_id,omitempty"`
}

// validateProjectFields checks the optional attributes shared by
// create and update requests.
func validateProjectFields(status, priority *string, budget *float64, startDate, endDate, managerID *string, errs validator.ValidationErrors) validator.ValidationErrors {
	if status != nil {
		if _, ok := ParseStatus(*status); !ok {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of PLANNED, ACTIVE, ON_HOLD, COMPLETED"})
		}
	}

	if priority != nil {
		if _, ok := ParsePriority(*priority); !ok {
			errs = append(errs, validator.ValidationError{Field: "priority", Message: "priority must be one of LOW, MEDIUM, HIGH"})
		}
	}

	if budget != nil && *budget < 0 {
		errs = append(errs, validator.ValidationError{Field: "budget", Message: "budget must not be negative"})
	}

	startValid := false
	if startDate != nil {
		startValid = validator.IsValidDate(*startDate)
		if !startValid {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if endDate != nil {
		if !validator.IsValidDate(*endDate) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		} else if startDate != nil && startValid && *endDate < *startDate {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
		}
	}

	if managerID != nil && !validator.IsValidUUID(*managerID) {
		errs = append(errs, validator.ValidationError{Field: "manager_id", Message: "manager_id must be a valid UUID"})
	}

	return errs
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(r.Name) < 2 || len(r.Name) > 150 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be between 2 and 150 characters"})
	}

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	} else if len(r.Code) < 2 || len(r.Code) > 20 {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must be between 2 and 20 characters"})
	}

	if r.Description != nil && len(*r.Description) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 1000 characters"})
	}

	errs = validateProjectFields(r.Status, r.Priority, r.Budget, r.StartDate, r.EndDate, r.ManagerID, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProjectRequest struct {
	ID          string   `json:"-"`
	Name        *string  `json:"name,omitempty"`
	Code        *string  `json:"code,omitempty"`
	Description *string  `json:"description,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	ManagerID   *string  `json:"manager_id,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "project id is required"})
	}

	if r.Name != nil && (len(*r.Name) < 2 || len(*r.Name) > 150) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be between 2 and 150 characters"})
	}

	if r.Code != nil && (len(*r.Code) < 2 || len(*r.Code) > 20) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must be between 2 and 20 characters"})
	}

	if r.Description != nil && len(*r.Description) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 1000 characters"})
	}

	errs = validateProjectFields(r.Status, r.Priority, r.Budget, r.StartDate, r.EndDate, r.ManagerID, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProjectFilter struct {
	Status    *Status
	ManagerID *string
	Search    *string
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description *string   `json:"description,omitempty"`
	Status      Status    `json:"status"`
	Priority    *Priority `json:"priority,omitempty"`
	Budget      *float64  `json:"budget,omitempty"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	ManagerID   *string   `json:"manager_id,omitempty"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func formatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	formatted := d.Format("2006-01-02")
	return &formatted
}

func ToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		Status:      p.Status,
		Priority:    p.Priority,
		Budget:      p.Budget,
		StartDate:   formatDate(p.StartDate),
		EndDate:     formatDate(p.EndDate),
		ManagerID:   p.ManagerID,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
