package user

import (
	"time"

	"github.com/hrworks/hr-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Department   *string `json:"department,omitempty"`
	JobTitle     *string `json:"job_title,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(r.Name) < 2 || len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be between 2 and 100 characters"})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	} else if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}

	if _, ok := ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of ADMIN, HR, MANAGER, EMPLOYEE"})
	}

	if r.EmployeeCode != nil && !validator.IsValidEmployeeCode(*r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code must match the pattern XXX-0000"})
	}

	if r.Department != nil && len(*r.Department) > 100 {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must not exceed 100 characters"})
	}

	if r.JobTitle != nil && len(*r.JobTitle) > 100 {
		errs = append(errs, validator.ValidationError{Field: "job_title", Message: "job_title must not exceed 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	Role         *string `json:"role,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Department   *string `json:"department,omitempty"`
	JobTitle     *string `json:"job_title,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "user id is required"})
	}

	if r.Name != nil && (len(*r.Name) < 2 || len(*r.Name) > 100) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be between 2 and 100 characters"})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}

	if r.Role != nil {
		if _, ok := ParseRole(*r.Role); !ok {
			errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of ADMIN, HR, MANAGER, EMPLOYEE"})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateProfileRequest is the self-service subset of a user update.
// Role, manager and activation stay admin-only.
type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty"`
	Password   *string `json:"password,omitempty"`
	Department *string `json:"department,omitempty"`
	JobTitle   *string `json:"job_title,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && (len(*r.Name) < 2 || len(*r.Name) > 100) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be between 2 and 100 characters"})
	}

	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}

	if r.Department != nil && len(*r.Department) > 100 {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must not exceed 100 characters"})
	}

	if r.JobTitle != nil && len(*r.JobTitle) > 100 {
		errs = append(errs, validator.ValidationError{Field: "job_title", Message: "job_title must not exceed 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignManagerRequest struct {
	EmployeeID string `json:"-"`
	ManagerID  string `json:"manager_id"`
}

func (r *AssignManagerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if validator.IsEmpty(r.ManagerID) {
		errs = append(errs, validator.ValidationError{Field: "manager_id", Message: "manager_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UserFilter narrows user listings.
type UserFilter struct {
	Role       *string
	Department *string
	Active     *bool
	Search     *string
}

// UserResponse is the public projection of a User. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	EmployeeCode *string   `json:"employee_code,omitempty"`
	Department   *string   `json:"department,omitempty"`
	JobTitle     *string   `json:"job_title,omitempty"`
	ManagerID    *string   `json:"manager_id,omitempty"`
	ManagerName  *string   `json:"manager_name,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToResponse projects a User to its public representation.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		EmployeeCode: u.EmployeeCode,
		Department:   u.Department,
		JobTitle:     u.JobTitle,
		ManagerID:    u.ManagerID,
		ManagerName:  u.ManagerName,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
