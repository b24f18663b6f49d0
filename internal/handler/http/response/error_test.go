package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hrworks/hr-backend-go/internal/domain/timesheet"
	"github.com/hrworks/hr-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not assigned to project", timesheet.ErrNotAssignedToProject, http.StatusForbidden},
		{"approval denied", timesheet.ErrApprovalDenied, http.StatusForbidden},
		{"self approval", timesheet.ErrSelfApproval, http.StatusForbidden},
		{"already decided", timesheet.ErrTimesheetNotPending, http.StatusConflict},
		{"timesheet missing", timesheet.ErrTimesheetNotFound, http.StatusNotFound},
		{"self management", user.ErrSelfManagement, http.StatusBadRequest},
		{"email taken", user.ErrEmailExists, http.StatusConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
