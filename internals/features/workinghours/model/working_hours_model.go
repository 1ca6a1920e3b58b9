package model

import (
	"time"

	"github.com/google/uuid"

	"nssportal_backend/internals/features/approval/engine"
)

// WorkingHoursEntryModel is an SC's logged activity. entry_hours is derived
// from start/end on every write and never taken from the caller.
type WorkingHoursEntryModel struct {
	EntryID           uuid.UUID `gorm:"column:entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"entry_id"`
	EntryOwnerID      uuid.UUID `gorm:"column:entry_owner_id;type:uuid;not null;index" json:"entry_owner_id"`
	EntryDepartmentID uuid.UUID `gorm:"column:entry_department_id;type:uuid;not null;index" json:"entry_department_id"`
	EntryActivityName string    `gorm:"column:entry_activity_name;size:150;not null" json:"entry_activity_name"`
	EntryDate         time.Time `gorm:"column:entry_date;not null" json:"entry_date"`
	EntryStartTime    string    `gorm:"column:entry_start_time;size:5;not null" json:"entry_start_time"` // HH:MM
	EntryEndTime      string    `gorm:"column:entry_end_time;size:5;not null" json:"entry_end_time"`     // HH:MM
	EntryHours        float64   `gorm:"column:entry_hours;not null" json:"entry_hours"`
	EntryDescription  string    `gorm:"column:entry_description;type:text" json:"entry_description"`
	EntryStatus       string    `gorm:"column:entry_status;type:varchar(10);not null;default:'pending';index" json:"entry_status"`
	CreatedAt         time.Time `gorm:"column:entry_created_at;autoCreateTime" json:"entry_created_at"`
	UpdatedAt         time.Time `gorm:"column:entry_updated_at;autoUpdateTime" json:"entry_updated_at"`
}

func (WorkingHoursEntryModel) TableName() string {
	return "working_hours_entries"
}

// Target snapshots the row for engine checks.
func (m *WorkingHoursEntryModel) Target() engine.Target {
	return engine.Target{
		Kind:         engine.KindWorkingHours,
		ID:           m.EntryID,
		OwnerID:      m.EntryOwnerID,
		DepartmentID: m.EntryDepartmentID,
		Status:       engine.Status(m.EntryStatus),
	}
}
