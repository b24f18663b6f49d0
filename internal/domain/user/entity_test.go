package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles() {
		parsed, ok := ParseRole(string(r))
		assert.True(t, ok)
		assert.Equal(t, r, parsed)
	}

	_, ok := ParseRole("admin")
	assert.False(t, ok)

	_, ok = ParseRole("SUPERUSER")
	assert.False(t, ok)
}

func TestIsManagedBy(t *testing.T) {
	managerID := "mgr-1"
	u := User{ID: "emp-1", ManagerID: &managerID}

	assert.True(t, u.IsManagedBy("mgr-1"))
	assert.False(t, u.IsManagedBy("mgr-2"))

	orphan := User{ID: "emp-2"}
	assert.False(t, orphan.IsManagedBy("mgr-1"))
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, PermissionUserManage))
	assert.True(t, HasPermission(RoleHR, PermissionTimesheetViewAll))
	assert.True(t, HasPermission(RoleManager, PermissionTimesheetApprove))
	assert.True(t, HasPermission(RoleEmployee, PermissionTimesheetSubmit))

	assert.False(t, HasPermission(RoleEmployee, PermissionTimesheetApprove))
	assert.False(t, HasPermission(RoleHR, PermissionTimesheetApprove))
	assert.False(t, HasPermission(RoleManager, PermissionUserManage))
	assert.False(t, HasPermission(Role("UNKNOWN"), PermissionViewOwnProfile))
}
