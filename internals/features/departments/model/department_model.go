package model

import (
	"time"

	"github.com/google/uuid"
)

// DepartmentModel is the flat institute grouping; no hierarchy to traverse.
type DepartmentModel struct {
	DepartmentID        uuid.UUID `gorm:"column:department_id;type:uuid;default:gen_random_uuid();primaryKey" json:"department_id"`
	DepartmentCode      string    `gorm:"column:department_code;size:10;unique;not null" json:"department_code"`
	DepartmentName      string    `gorm:"column:department_name;size:100;not null" json:"department_name"`
	DepartmentInstitute string    `gorm:"column:department_institute;size:100" json:"department_institute"`
	CreatedAt           time.Time `gorm:"column:department_created_at;autoCreateTime" json:"department_created_at"`
	UpdatedAt           time.Time `gorm:"column:department_updated_at;autoUpdateTime" json:"department_updated_at"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
