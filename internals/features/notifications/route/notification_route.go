package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nssportal_backend/internals/features/notifications/controller"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	n := api.Group("/notifications")
	n.Get("/", ctrl.List)
	n.Patch("/read-all", ctrl.MarkAllRead)
	n.Patch("/:id/read", ctrl.MarkRead)
}
