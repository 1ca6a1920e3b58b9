package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is a per-user inbox row. Delivery is fire-and-forget;
// a failed insert never rolls back the mutation that triggered it.
type NotificationModel struct {
	NotificationID      uuid.UUID      `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationUserID  uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationTitle   string         `gorm:"column:notification_title;size:200;not null" json:"notification_title"`
	NotificationPayload datatypes.JSON `gorm:"column:notification_payload;type:jsonb" json:"notification_payload"`
	NotificationRead    bool           `gorm:"column:notification_read;not null;default:false" json:"notification_read"`
	CreatedAt           time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
