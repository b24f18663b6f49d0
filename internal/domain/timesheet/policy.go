package timesheet

import (
	"github.com/hrworks/hr-backend-go/internal/domain/auth"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
)

// Authorization rules for timesheet access. All predicates are pure:
// they take the acting principal, the entry, and the entry's owner, and
// never touch storage. Manager scope follows the direct manager link on
// the owner record.

// CanView reports whether the principal may read the entry. Admin and
// HR see everything, owners see their own, managers see their direct
// reports'.
func CanView(principal auth.Principal, ts Timesheet, owner user.User) bool {
	if principal.IsAdmin() || principal.IsHR() {
		return true
	}
	if ts.IsOwnedBy(principal.ID) {
		return true
	}
	if principal.IsManager() && owner.IsManagedBy(principal.ID) {
		return true
	}
	return false
}

// CanModify reports whether the principal may update or delete the
// entry. Only the owner may, and only while it is still pending.
func CanModify(principal auth.Principal, ts Timesheet) bool {
	return ts.IsOwnedBy(principal.ID) && ts.CanBeModified()
}

// CanDecide reports whether the principal may approve or reject the
// entry. Managers decide for their direct reports, admins for anyone.
// Nobody decides their own entry.
func CanDecide(principal auth.Principal, ts Timesheet, owner user.User) bool {
	if ts.IsOwnedBy(principal.ID) {
		return false
	}
	if principal.IsAdmin() {
		return true
	}
	if principal.IsManager() && owner.IsManagedBy(principal.ID) {
		return true
	}
	return false
}

// CanSubmitFor reports whether the principal may create an entry for
// the given owner. Employees and managers log their own hours; admins
// may backfill for anyone.
func CanSubmitFor(principal auth.Principal, ownerID string) bool {
	if principal.IsAdmin() {
		return true
	}
	return principal.ID == ownerID && user.HasPermission(principal.Role, user.PermissionTimesheetSubmit)
}
