package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	whModel "nssportal_backend/internals/features/workinghours/model"
)

// ParseClock parses a HH:MM wall-clock string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ComputeHours derives entry_hours from start/end, clamped to ≥ 0. It is the
// single source of the derived field; the caller's value is never stored.
func ComputeHours(startTime, endTime string) (float64, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, err
	}
	minutes := end - start
	if minutes < 0 {
		minutes = 0
	}
	return float64(minutes) / 60.0, nil
}

type CreateWorkingHoursRequest struct {
	EntryActivityName string `json:"entry_activity_name" validate:"required,min=2,max=150"`
	EntryDate         string `json:"entry_date" validate:"required"` // YYYY-MM-DD
	EntryStartTime    string `json:"entry_start_time" validate:"required"`
	EntryEndTime      string `json:"entry_end_time" validate:"required"`
	EntryDescription  string `json:"entry_description" validate:"omitempty,max=2000"`
}

func (r *CreateWorkingHoursRequest) Normalize() {
	r.EntryActivityName = strings.TrimSpace(r.EntryActivityName)
	r.EntryStartTime = strings.TrimSpace(r.EntryStartTime)
	r.EntryEndTime = strings.TrimSpace(r.EntryEndTime)
	r.EntryDescription = strings.TrimSpace(r.EntryDescription)
}

func (r *CreateWorkingHoursRequest) ToModel(owner, dept uuid.UUID) (*whModel.WorkingHoursEntryModel, error) {
	date, err := time.Parse("2006-01-02", r.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD", r.EntryDate)
	}
	hours, err := ComputeHours(r.EntryStartTime, r.EntryEndTime)
	if err != nil {
		return nil, err
	}
	return &whModel.WorkingHoursEntryModel{
		EntryOwnerID:      owner,
		EntryDepartmentID: dept,
		EntryActivityName: r.EntryActivityName,
		EntryDate:         date,
		EntryStartTime:    r.EntryStartTime,
		EntryEndTime:      r.EntryEndTime,
		EntryHours:        hours,
		EntryDescription:  r.EntryDescription,
		EntryStatus:       "pending",
	}, nil
}

// UpdateWorkingHoursRequest — owner edit while still pending. Hours are
// recomputed whenever either clock field changes.
type UpdateWorkingHoursRequest struct {
	EntryActivityName *string `json:"entry_activity_name,omitempty" validate:"omitempty,min=2,max=150"`
	EntryDate         *string `json:"entry_date,omitempty"`
	EntryStartTime    *string `json:"entry_start_time,omitempty"`
	EntryEndTime      *string `json:"entry_end_time,omitempty"`
	EntryDescription  *string `json:"entry_description,omitempty" validate:"omitempty,max=2000"`
}

// Updates builds the column map against the current row, recomputing the
// derived hours from the effective start/end pair.
func (r *UpdateWorkingHoursRequest) Updates(current *whModel.WorkingHoursEntryModel) (map[string]any, error) {
	updates := map[string]any{}

	if r.EntryActivityName != nil {
		updates["entry_activity_name"] = strings.TrimSpace(*r.EntryActivityName)
	}
	if r.EntryDate != nil {
		date, err := time.Parse("2006-01-02", *r.EntryDate)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD", *r.EntryDate)
		}
		updates["entry_date"] = date
	}
	if r.EntryDescription != nil {
		updates["entry_description"] = strings.TrimSpace(*r.EntryDescription)
	}

	start := current.EntryStartTime
	end := current.EntryEndTime
	if r.EntryStartTime != nil {
		start = strings.TrimSpace(*r.EntryStartTime)
		updates["entry_start_time"] = start
	}
	if r.EntryEndTime != nil {
		end = strings.TrimSpace(*r.EntryEndTime)
		updates["entry_end_time"] = end
	}
	if r.EntryStartTime != nil || r.EntryEndTime != nil {
		hours, err := ComputeHours(start, end)
		if err != nil {
			return nil, err
		}
		updates["entry_hours"] = hours
	}

	return updates, nil
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
