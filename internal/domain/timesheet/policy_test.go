package timesheet

import (
	"testing"

	"github.com/hrworks/hr-backend-go/internal/domain/auth"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCanView(t *testing.T) {
	owner := user.User{ID: "emp-1", Role: user.RoleEmployee, ManagerID: strPtr("mgr-1")}
	ts := Timesheet{ID: "ts-1", UserID: "emp-1", Status: StatusPending}

	tests := []struct {
		name      string
		principal auth.Principal
		want      bool
	}{
		{"admin sees everything", auth.Principal{ID: "admin-1", Role: user.RoleAdmin}, true},
		{"hr sees everything", auth.Principal{ID: "hr-1", Role: user.RoleHR}, true},
		{"owner sees own", auth.Principal{ID: "emp-1", Role: user.RoleEmployee}, true},
		{"direct manager sees report's", auth.Principal{ID: "mgr-1", Role: user.RoleManager}, true},
		{"unrelated manager denied", auth.Principal{ID: "mgr-2", Role: user.RoleManager}, false},
		{"unrelated employee denied", auth.Principal{ID: "emp-2", Role: user.RoleEmployee}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.principal, ts, owner))
		})
	}
}

func TestCanModify(t *testing.T) {
	ownerPrincipal := auth.Principal{ID: "emp-1", Role: user.RoleEmployee}

	assert.True(t, CanModify(ownerPrincipal, Timesheet{UserID: "emp-1", Status: StatusPending}))
	assert.False(t, CanModify(ownerPrincipal, Timesheet{UserID: "emp-1", Status: StatusApproved}))
	assert.False(t, CanModify(ownerPrincipal, Timesheet{UserID: "emp-1", Status: StatusRejected}))
	assert.False(t, CanModify(auth.Principal{ID: "emp-2", Role: user.RoleEmployee}, Timesheet{UserID: "emp-1", Status: StatusPending}))

	// Managers and HR do not edit other people's entries
	assert.False(t, CanModify(auth.Principal{ID: "mgr-1", Role: user.RoleManager}, Timesheet{UserID: "emp-1", Status: StatusPending}))
	assert.False(t, CanModify(auth.Principal{ID: "hr-1", Role: user.RoleHR}, Timesheet{UserID: "emp-1", Status: StatusPending}))
}

func TestCanDecide(t *testing.T) {
	owner := user.User{ID: "emp-1", Role: user.RoleEmployee, ManagerID: strPtr("mgr-1")}
	ts := Timesheet{ID: "ts-1", UserID: "emp-1", Status: StatusPending}

	tests := []struct {
		name      string
		principal auth.Principal
		want      bool
	}{
		{"direct manager decides", auth.Principal{ID: "mgr-1", Role: user.RoleManager}, true},
		{"admin decides", auth.Principal{ID: "admin-1", Role: user.RoleAdmin}, true},
		{"unrelated manager denied", auth.Principal{ID: "mgr-2", Role: user.RoleManager}, false},
		{"hr does not approve", auth.Principal{ID: "hr-1", Role: user.RoleHR}, false},
		{"employee denied", auth.Principal{ID: "emp-2", Role: user.RoleEmployee}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDecide(tt.principal, ts, owner))
		})
	}
}

func TestCanDecideNeverOwn(t *testing.T) {
	// A manager who logged the entry cannot decide it, even for
	// themselves as their own report.
	selfOwner := user.User{ID: "mgr-1", Role: user.RoleManager, ManagerID: strPtr("mgr-1")}
	ts := Timesheet{ID: "ts-1", UserID: "mgr-1", Status: StatusPending}

	assert.False(t, CanDecide(auth.Principal{ID: "mgr-1", Role: user.RoleManager}, ts, selfOwner))

	// Admins are not exempt from the self-decision rule either.
	adminOwner := user.User{ID: "admin-1", Role: user.RoleAdmin}
	adminTS := Timesheet{ID: "ts-2", UserID: "admin-1", Status: StatusPending}
	assert.False(t, CanDecide(auth.Principal{ID: "admin-1", Role: user.RoleAdmin}, adminTS, adminOwner))
}

func TestCanSubmitFor(t *testing.T) {
	assert.True(t, CanSubmitFor(auth.Principal{ID: "emp-1", Role: user.RoleEmployee}, "emp-1"))
	assert.True(t, CanSubmitFor(auth.Principal{ID: "mgr-1", Role: user.RoleManager}, "mgr-1"))
	assert.False(t, CanSubmitFor(auth.Principal{ID: "emp-1", Role: user.RoleEmployee}, "emp-2"))

	// HR views but never submits hours
	assert.False(t, CanSubmitFor(auth.Principal{ID: "hr-1", Role: user.RoleHR}, "hr-1"))

	// Admin may backfill for anyone
	assert.True(t, CanSubmitFor(auth.Principal{ID: "admin-1", Role: user.RoleAdmin}, "emp-1"))
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	status, ok := ParseStatus("PENDING")
	assert.True(t, ok)
	assert.Equal(t, StatusPending, status)

	_, ok = ParseStatus("pending")
	assert.False(t, ok)

	_, ok = ParseStatus("CANCELLED")
	assert.False(t, ok)
}
