package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nssportal_backend/internals/features/notifications/model"
	helper "nssportal_backend/internals/helpers"
	authMiddleware "nssportal_backend/internals/middlewares/auth"
)

// NotificationController only ever serves the caller's own inbox; there is no
// cross-user read path.
type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 📄 List own notifications, unread first
func (ctl *NotificationController) List(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctl.DB.WithContext(c.UserContext()).
		Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", p.UserID)
	if c.Query("unread") == "true" {
		base = base.Where("notification_read = FALSE")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var rows []model.NotificationModel
	if err := base.
		Order("notification_read ASC, notification_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list notifications")
	}

	return helper.Success(c, "Notifications", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// ✅ Mark one notification read (idempotent)
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification ID")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, p.UserID).
		Update("notification_read", true)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.Success(c, "Notification marked read", nil)
}

// ✅ Mark all own notifications read
func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = FALSE", p.UserID).
		Update("notification_read", true).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}
	return helper.Success(c, "All notifications marked read", nil)
}
