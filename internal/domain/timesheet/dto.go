package timesheet

import (
	"time"

	"github.com/hrworks/hr-backend-go/internal/pkg/validator"
)

const (
	MinHours = 0.5
	MaxHours = 24.0
)

type CreateTimesheetRequest struct {
	UserID      string  `json:"user_id,omitempty"`
	ProjectID   string  `json:"project_id"`
	WorkDate    string  `json:"work_date"`
	Hours       float64 `json:"hours"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	Description *string `json:"description,omitempty"`
}

// validateTimeRange checks the optional HH:MM pair shared by create
// and update requests.
func validateTimeRange(startTime, endTime *string, errs validator.ValidationErrors) validator.ValidationErrors {
	startValid := false
	if startTime != nil {
		startValid = validator.IsValidTimeOfDay(*startTime)
		if !startValid {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be in HH:MM format"})
		}
	}
	if endTime != nil {
		if !validator.IsValidTimeOfDay(*endTime) {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be in HH:MM format"})
		} else if startTime != nil && startValid {
			start, _ := time.Parse("15:04", *startTime)
			end, _ := time.Parse("15:04", *endTime)
			if !end.After(start) {
				errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be after start_time"})
			}
		}
	}
	return errs
}

func (r *CreateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "project_id is required"})
	} else if !validator.IsValidUUID(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "project_id must be a valid UUID"})
	}

	if validator.IsEmpty(r.WorkDate) {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "work_date is required"})
	} else if !validator.IsValidDate(r.WorkDate) {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "work_date must be in YYYY-MM-DD format"})
	} else if validator.IsFutureDate(r.WorkDate) {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "work_date must not be in the future"})
	}

	if r.Hours < MinHours || r.Hours > MaxHours {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be between 0.5 and 24"})
	}

	errs = validateTimeRange(r.StartTime, r.EndTime, errs)

	if r.Description != nil && len(*r.Description) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 1000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTimesheetRequest struct {
	ID          string   `json:"-"`
	ProjectID   *string  `json:"project_id,omitempty"`
	WorkDate    *string  `json:"work_date,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
	StartTime   *string  `json:"start_time,omitempty"`
	EndTime     *string  `json:"end_time,omitempty"`
	Description *string  `json:"description,omitempty"`
}

func (r *UpdateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "timesheet id is required"})
	}

	if r.ProjectID != nil && !validator.IsValidUUID(*r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "project_id must be a valid UUID"})
	}

	if r.WorkDate != nil {
		if !validator.IsValidDate(*r.WorkDate) {
			errs = append(errs, validator.ValidationError{Field: "work_date", Message: "work_date must be in YYYY-MM-DD format"})
		} else if validator.IsFutureDate(*r.WorkDate) {
			errs = append(errs, validator.ValidationError{Field: "work_date", Message: "work_date must not be in the future"})
		}
	}

	if r.Hours != nil && (*r.Hours < MinHours || *r.Hours > MaxHours) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be between 0.5 and 24"})
	}

	errs = validateTimeRange(r.StartTime, r.EndTime, errs)

	if r.Description != nil && len(*r.Description) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 1000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecisionRequest struct {
	ID   string  `json:"-"`
	Note *string `json:"note,omitempty"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "timesheet id is required"})
	}

	if r.Note != nil && len(*r.Note) > 500 {
		errs = append(errs, validator.ValidationError{Field: "note", Message: "note must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimesheetFilter struct {
	UserID    *string
	ProjectID *string
	Status    *Status
	DateFrom  *time.Time
	DateTo    *time.Time
}

type TimesheetResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name,omitempty"`
	ProjectID    string     `json:"project_id"`
	ProjectName  string     `json:"project_name,omitempty"`
	ProjectCode  string     `json:"project_code,omitempty"`
	WorkDate     string     `json:"work_date"`
	Hours        float64    `json:"hours"`
	StartTime    *string    `json:"start_time,omitempty"`
	EndTime      *string    `json:"end_time,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Status       Status     `json:"status"`
	DecidedBy    *string    `json:"decided_by,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	DecisionNote *string    `json:"decision_note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToResponse(t Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		UserName:     t.UserName,
		ProjectID:    t.ProjectID,
		ProjectName:  t.ProjectName,
		ProjectCode:  t.ProjectCode,
		WorkDate:     t.WorkDate.Format("2006-01-02"),
		Hours:        t.Hours,
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		Description:  t.Description,
		Status:       t.Status,
		DecidedBy:    t.DecidedBy,
		DecidedAt:    t.DecidedAt,
		DecisionNote: t.DecisionNote,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// SummaryResponse aggregates hours for reporting views.
type SummaryResponse struct {
	TotalHours    float64 `json:"total_hours"`
	PendingCount  int64   `json:"pending_count"`
	ApprovedCount int64   `json:"approved_count"`
	RejectedCount int64   `json:"rejected_count"`
}
