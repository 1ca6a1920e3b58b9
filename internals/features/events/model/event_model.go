package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"nssportal_backend/internals/features/approval/engine"
)

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusCompleted = "completed"
)

// EventModel. event_status is derived from event_date; it is recomputed on
// every write and never accepted from a caller.
type EventModel struct {
	EventID           uuid.UUID      `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventName         string         `gorm:"column:event_name;size:150;not null" json:"event_name"`
	EventDate         time.Time      `gorm:"column:event_date;not null" json:"event_date"`
	EventMode         string         `gorm:"column:event_mode;type:varchar(10);not null" json:"event_mode"` // online|offline|hybrid
	EventDepartmentID uuid.UUID      `gorm:"column:event_department_id;type:uuid;not null;index" json:"event_department_id"`
	EventDescription  string         `gorm:"column:event_description;type:text" json:"event_description"`
	EventTags         pq.StringArray `gorm:"column:event_tags;type:text[]" json:"event_tags"`
	EventStatus       string         `gorm:"column:event_status;type:varchar(10);not null" json:"event_status"`
	EventCreatedBy    uuid.UUID      `gorm:"column:event_created_by;type:uuid;not null;index" json:"event_created_by"`
	CreatedAt         time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	UpdatedAt         time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}

// DeriveStatus computes the status from the event date. Single place; every
// create and update calls this before persisting.
func DeriveStatus(eventDate, now time.Time) string {
	if eventDate.Before(now.Truncate(24 * time.Hour)) {
		return EventStatusCompleted
	}
	return EventStatusUpcoming
}

// RefreshStatus recomputes the derived status field in place.
func (m *EventModel) RefreshStatus(now time.Time) {
	m.EventStatus = DeriveStatus(m.EventDate, now)
}

// Target snapshots the row for engine checks.
func (m *EventModel) Target() engine.Target {
	return engine.Target{
		Kind:         engine.KindEvent,
		ID:           m.EventID,
		OwnerID:      m.EventCreatedBy,
		DepartmentID: m.EventDepartmentID,
	}
}
