package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. One row per portal login; the role
// column holds the closed enum value (pc/po/sc) resolved at registration.
type UserModel struct {
	ID           uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string     `gorm:"column:user_name;size:100;not null" json:"user_name"`
	Email        string     `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	Password     string     `gorm:"column:user_password;not null" json:"-"`
	GoogleID     *string    `gorm:"column:user_google_id;size:255;unique" json:"google_id,omitempty"`
	Role         string     `gorm:"column:user_role;type:varchar(10);not null" json:"user_role"`
	DepartmentID *uuid.UUID `gorm:"column:user_department_id;type:uuid" json:"user_department_id,omitempty"`
	IsActive     bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	CreatedAt    time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt    time.Time  `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
