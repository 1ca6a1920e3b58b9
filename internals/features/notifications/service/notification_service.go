package service

import (
	"context"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nssportal_backend/internals/features/notifications/model"
)

// NotifyAsync writes a notification row in a detached goroutine. Errors are
// logged and dropped: delivery failure must never roll back the mutation
// that produced the event.
func NotifyAsync(db *gorm.DB, userID uuid.UUID, title string, payload any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		raw, err := sonic.Marshal(payload)
		if err != nil {
			log.Printf("[ERROR] notification payload marshal: %v", err)
			return
		}

		n := model.NotificationModel{
			NotificationUserID:  userID,
			NotificationTitle:   title,
			NotificationPayload: raw,
		}
		if err := db.WithContext(ctx).Create(&n).Error; err != nil {
			log.Printf("[ERROR] notification insert for %s: %v", userID, err)
		}
	}()
}

// NotifyManyAsync fans one event out to several users.
func NotifyManyAsync(db *gorm.DB, userIDs []uuid.UUID, title string, payload any) {
	for _, id := range userIDs {
		NotifyAsync(db, id, title, payload)
	}
}
