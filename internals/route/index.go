package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	departmentRoute "nssportal_backend/internals/features/departments/route"
	eventRoute "nssportal_backend/internals/features/events/route"
	authRoute "nssportal_backend/internals/features/identity/route"
	notificationRoute "nssportal_backend/internals/features/notifications/route"
	volunteerRoute "nssportal_backend/internals/features/volunteers/route"
	workingHoursRoute "nssportal_backend/internals/features/workinghours/route"
	authMiddleware "nssportal_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature router. Auth endpoints stay outside the
// token guard; everything else requires a valid access token, with per-row
// decisions left to the approval engine.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🔓 Public + session endpoints
	authRoute.AuthRoutes(app, db)

	// 🔒 Protected API surface
	api := app.Group("/api", authMiddleware.AuthMiddleware())

	departmentRoute.DepartmentRoutes(api, db)
	volunteerRoute.VolunteerRoutes(api, db)
	workingHoursRoute.WorkingHoursRoutes(api, db)
	eventRoute.EventRoutes(api, db)
	notificationRoute.NotificationRoutes(api, db)
}
