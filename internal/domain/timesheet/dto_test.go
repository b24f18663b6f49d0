package timesheet

import (
	"testing"
	"time"

	"github.com/hrworks/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProjectID = "2b8e7c0a-4c1f-4f4a-9d8e-1a2b3c4d5e6f"

func validCreateRequest() CreateTimesheetRequest {
	return CreateTimesheetRequest{
		ProjectID: testProjectID,
		WorkDate:  time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		Hours:     8,
	}
}

func TestCreateTimesheetRequestValidate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateTimesheetRequestHoursBounds(t *testing.T) {
	tests := []struct {
		hours float64
		valid bool
	}{
		{0, false},
		{0.4, false},
		{0.5, true},
		{8, true},
		{24, true},
		{24.5, false},
		{-1, false},
	}

	for _, tt := range tests {
		req := validCreateRequest()
		req.Hours = tt.hours
		err := req.Validate()
		if tt.valid {
			assert.NoError(t, err, "hours=%v", tt.hours)
		} else {
			require.Error(t, err, "hours=%v", tt.hours)
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), "hours")
		}
	}
}

func TestCreateTimesheetRequestWorkDate(t *testing.T) {
	req := validCreateRequest()
	req.WorkDate = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	err := req.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "work_date")

	// Today is a valid work date
	req.WorkDate = time.Now().Format("2006-01-02")
	assert.NoError(t, req.Validate())

	req.WorkDate = "03/01/2026"
	assert.Error(t, req.Validate())

	req.WorkDate = ""
	assert.Error(t, req.Validate())
}

func TestCreateTimesheetRequestProjectID(t *testing.T) {
	req := validCreateRequest()
	req.ProjectID = ""
	assert.Error(t, req.Validate())

	req.ProjectID = "not-a-uuid"
	assert.Error(t, req.Validate())
}

func TestCreateTimesheetRequestTimeRange(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name  string
		start *string
		end   *string
		valid bool
	}{
		{"both omitted", nil, nil, true},
		{"valid range", str("09:00"), str("17:30"), true},
		{"start only", str("09:00"), nil, true},
		{"end only", nil, str("17:30"), true},
		{"end before start", str("17:30"), str("09:00"), false},
		{"end equals start", str("09:00"), str("09:00"), false},
		{"bad start format", str("9am"), str("17:30"), false},
		{"bad end format", str("09:00"), str("25:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			req.StartTime = tt.start
			req.EndTime = tt.end
			err := req.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUpdateTimesheetRequestValidate(t *testing.T) {
	hours := 6.5
	req := UpdateTimesheetRequest{ID: "ts-1", Hours: &hours}
	assert.NoError(t, req.Validate())

	badHours := 30.0
	req = UpdateTimesheetRequest{ID: "ts-1", Hours: &badHours}
	assert.Error(t, req.Validate())

	// Missing ID
	req = UpdateTimesheetRequest{Hours: &hours}
	assert.Error(t, req.Validate())

	future := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	req = UpdateTimesheetRequest{ID: "ts-1", WorkDate: &future}
	assert.Error(t, req.Validate())
}

func TestDecisionRequestValidate(t *testing.T) {
	req := DecisionRequest{ID: "ts-1"}
	assert.NoError(t, req.Validate())

	req = DecisionRequest{}
	assert.Error(t, req.Validate())

	longNote := make([]byte, 501)
	for i := range longNote {
		longNote[i] = 'x'
	}
	note := string(longNote)
	req = DecisionRequest{ID: "ts-1", Note: &note}
	assert.Error(t, req.Validate())
}
