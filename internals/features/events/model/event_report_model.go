package model

import (
	"time"

	"github.com/google/uuid"

	"nssportal_backend/internals/features/approval/engine"
)

// EventReportModel. The unique index on (event, submitter) is the duplicate
// guard — submission never does a read-then-write existence check.
// report_department_id is copied from the event at submit time so visibility
// scoping stays a single-table query.
type EventReportModel struct {
	ReportID           uuid.UUID  `gorm:"column:report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"report_id"`
	ReportEventID      uuid.UUID  `gorm:"column:report_event_id;type:uuid;not null;uniqueIndex:uq_report_event_submitter" json:"report_event_id"`
	ReportSubmittedBy  uuid.UUID  `gorm:"column:report_submitted_by;type:uuid;not null;uniqueIndex:uq_report_event_submitter" json:"report_submitted_by"`
	ReportDepartmentID uuid.UUID  `gorm:"column:report_department_id;type:uuid;not null;index" json:"report_department_id"`
	ReportFileURL      string     `gorm:"column:report_file_url;size:512;not null" json:"report_file_url"`
	ReportStatus       string     `gorm:"column:report_status;type:varchar(10);not null;default:'pending';index" json:"report_status"`
	ReportComments     string     `gorm:"column:report_comments;type:text" json:"report_comments"`
	ReportApprovedBy   *uuid.UUID `gorm:"column:report_approved_by;type:uuid" json:"report_approved_by,omitempty"`
	ReportApprovedAt   *time.Time `gorm:"column:report_approved_at" json:"report_approved_at,omitempty"`
	CreatedAt          time.Time  `gorm:"column:report_created_at;autoCreateTime" json:"report_created_at"`
	UpdatedAt          time.Time  `gorm:"column:report_updated_at;autoUpdateTime" json:"report_updated_at"`
}

func (EventReportModel) TableName() string {
	return "event_reports"
}

// Target snapshots the row for engine checks.
func (m *EventReportModel) Target() engine.Target {
	return engine.Target{
		Kind:         engine.KindEventReport,
		ID:           m.ReportID,
		OwnerID:      m.ReportSubmittedBy,
		DepartmentID: m.ReportDepartmentID,
		Status:       engine.Status(m.ReportStatus),
	}
}
