package user

type Permission string

const (
	// Self management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Timesheet management
	PermissionTimesheetViewOwn Permission = "timesheet.view_own"
	PermissionTimesheetSubmit  Permission = "timesheet.submit"
	PermissionTimesheetViewAll Permission = "timesheet.view_all"
	PermissionTimesheetApprove Permission = "timesheet.approve"

	// User management
	PermissionUserViewAll Permission = "user.view_all"
	PermissionUserManage  Permission = "user.manage"

	// Project management
	PermissionProjectView   Permission = "project.view"
	PermissionProjectManage Permission = "project.manage"

	// Assignment management
	PermissionAssignmentView   Permission = "assignment.view"
	PermissionAssignmentManage Permission = "assignment.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionTimesheetViewOwn,
		PermissionTimesheetSubmit,
		PermissionTimesheetViewAll,
		PermissionTimesheetApprove,
		PermissionUserViewAll,
		PermissionUserManage,
		PermissionProjectView,
		PermissionProjectManage,
		PermissionAssignmentView,
		PermissionAssignmentManage,
	},
	RoleHR: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionTimesheetViewAll,
		PermissionUserViewAll,
		PermissionUserManage,
		PermissionProjectView,
		PermissionProjectManage,
		PermissionAssignmentView,
		PermissionAssignmentManage,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionTimesheetViewOwn,
		PermissionTimesheetSubmit,
		PermissionTimesheetApprove,
		PermissionProjectView,
		PermissionAssignmentView,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionTimesheetViewOwn,
		PermissionTimesheetSubmit,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
