package user

import "errors"

var (
	ErrUserNotFound            = errors.New("User not found")
	ErrEmailExists             = errors.New("Email already registered")
	ErrEmployeeCodeExists      = errors.New("Employee code already registered")
	ErrManagerRoleRequired     = errors.New("Assigned manager must have MANAGER role")
	ErrSelfManagement          = errors.New("Users cannot be their own manager")
	ErrEmployeeRoleRequired    = errors.New("Target user must have EMPLOYEE role")
	ErrManagerHasEmployees     = errors.New("Manager still has managed employees")
	ErrUserHasDependents       = errors.New("User has dependent records")
	ErrAdminPrivilegeRequired  = errors.New("Admin privilege required")
	ErrHRPrivilegeRequired     = errors.New("HR privilege required")
	ErrManagerAccessRequired   = errors.New("Manager access required")
	ErrEmployeeAccessForbidden = errors.New("Access to this employee is not allowed")
)
