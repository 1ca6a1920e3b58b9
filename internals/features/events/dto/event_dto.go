package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	evModel "nssportal_backend/internals/features/events/model"
)

type CreateEventRequest struct {
	EventName         string   `json:"event_name" validate:"required,min=2,max=150"`
	EventDate         string   `json:"event_date" validate:"required"` // YYYY-MM-DD
	EventMode         string   `json:"event_mode" validate:"required,oneof=online offline hybrid"`
	EventDepartmentID string   `json:"event_department_id" validate:"required,uuid4"`
	EventDescription  string   `json:"event_description" validate:"omitempty,max=2000"`
	EventTags         []string `json:"event_tags" validate:"omitempty,dive,max=50"`
}

func (r *CreateEventRequest) Normalize() {
	r.EventName = strings.TrimSpace(r.EventName)
	r.EventMode = strings.ToLower(strings.TrimSpace(r.EventMode))
	r.EventDescription = strings.TrimSpace(r.EventDescription)
	for i := range r.EventTags {
		r.EventTags[i] = strings.TrimSpace(r.EventTags[i])
	}
}

func (r *CreateEventRequest) ToModel(createdBy uuid.UUID, now time.Time) (*evModel.EventModel, error) {
	deptID, err := uuid.Parse(r.EventDepartmentID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", r.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD", r.EventDate)
	}
	m := &evModel.EventModel{
		EventName:         r.EventName,
		EventDate:         date,
		EventMode:         r.EventMode,
		EventDepartmentID: deptID,
		EventDescription:  r.EventDescription,
		EventTags:         pq.StringArray(r.EventTags),
		EventCreatedBy:    createdBy,
	}
	m.RefreshStatus(now)
	return m, nil
}

// UpdateEventRequest intentionally has no status field: event_status is
// derived from the date, never caller-supplied.
type UpdateEventRequest struct {
	EventName        *string   `json:"event_name,omitempty" validate:"omitempty,min=2,max=150"`
	EventDate        *string   `json:"event_date,omitempty"`
	EventMode        *string   `json:"event_mode,omitempty" validate:"omitempty,oneof=online offline hybrid"`
	EventDescription *string   `json:"event_description,omitempty" validate:"omitempty,max=2000"`
	EventTags        *[]string `json:"event_tags,omitempty" validate:"omitempty,dive,max=50"`
}

func (r *UpdateEventRequest) Updates(current *evModel.EventModel, now time.Time) (map[string]any, error) {
	updates := map[string]any{}

	if r.EventName != nil {
		updates["event_name"] = strings.TrimSpace(*r.EventName)
	}
	if r.EventMode != nil {
		updates["event_mode"] = strings.ToLower(strings.TrimSpace(*r.EventMode))
	}
	if r.EventDescription != nil {
		updates["event_description"] = strings.TrimSpace(*r.EventDescription)
	}
	if r.EventTags != nil {
		updates["event_tags"] = pq.StringArray(*r.EventTags)
	}

	date := current.EventDate
	if r.EventDate != nil {
		parsed, err := time.Parse("2006-01-02", *r.EventDate)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD", *r.EventDate)
		}
		date = parsed
		updates["event_date"] = parsed
	}
	// recompute the derived status on every write
	updates["event_status"] = evModel.DeriveStatus(date, now)

	return updates, nil
}
