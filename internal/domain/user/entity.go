package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Full access to everything
	RoleHR       Role = "HR"       // Manages users, projects, assignments
	RoleManager  Role = "MANAGER"  // Approves timesheets of managed employees
	RoleEmployee Role = "EMPLOYEE" // Submits own timesheets
)

// AllRoles returns the closed set of valid roles.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleHR, RoleManager, RoleEmployee}
}

// ParseRole validates a role string against the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	EmployeeCode *string
	Department   *string
	JobTitle     *string
	ManagerID    *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join fields for responses
	ManagerName *string
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

// IsManagedBy reports whether managerID is this user's direct manager.
func (u *User) IsManagedBy(managerID string) bool {
	return u.ManagerID != nil && *u.ManagerID == managerID
}
