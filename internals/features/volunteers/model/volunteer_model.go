package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"nssportal_backend/internals/features/approval/engine"
)

// VolunteerModel has no approval workflow; it is listed here because its
// visibility rules mirror the stateful entities.
type VolunteerModel struct {
	VolunteerID           uuid.UUID      `gorm:"column:volunteer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"volunteer_id"`
	VolunteerName         string         `gorm:"column:volunteer_name;size:100;not null" json:"volunteer_name"`
	VolunteerStudentID    string         `gorm:"column:volunteer_student_id;size:30;unique;not null" json:"volunteer_student_id"`
	VolunteerDepartmentID uuid.UUID      `gorm:"column:volunteer_department_id;type:uuid;not null;index" json:"volunteer_department_id"`
	VolunteerYear         int            `gorm:"column:volunteer_year;not null" json:"volunteer_year"`
	VolunteerEmail        string         `gorm:"column:volunteer_email;size:255" json:"volunteer_email"`
	VolunteerContact      string         `gorm:"column:volunteer_contact;size:20" json:"volunteer_contact"`
	VolunteerSkills       pq.StringArray `gorm:"column:volunteer_skills;type:text[]" json:"volunteer_skills"`
	VolunteerPhotoURL     *string        `gorm:"column:volunteer_photo_url;size:512" json:"volunteer_photo_url,omitempty"`
	VolunteerJoinedOn     time.Time      `gorm:"column:volunteer_joined_on;not null" json:"volunteer_joined_on"`
	VolunteerAddedBy      uuid.UUID      `gorm:"column:volunteer_added_by;type:uuid;not null;index" json:"volunteer_added_by"`
	CreatedAt             time.Time      `gorm:"column:volunteer_created_at;autoCreateTime" json:"volunteer_created_at"`
	UpdatedAt             time.Time      `gorm:"column:volunteer_updated_at;autoUpdateTime" json:"volunteer_updated_at"`
}

func (VolunteerModel) TableName() string {
	return "volunteers"
}

// Target snapshots the row for engine checks.
func (m *VolunteerModel) Target() engine.Target {
	return engine.Target{
		Kind:         engine.KindVolunteer,
		ID:           m.VolunteerID,
		OwnerID:      m.VolunteerAddedBy,
		DepartmentID: m.VolunteerDepartmentID,
	}
}
