package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nssportal_backend/internals/constants"
	"nssportal_backend/internals/features/events/controller"
	authMiddleware "nssportal_backend/internals/middlewares/auth"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	evCtrl := controller.NewEventController(db)
	repCtrl := controller.NewEventReportController(db)

	// 🎪 Events
	ev := api.Group("/events")
	ev.Get("/", evCtrl.List)
	ev.Get("/:id", evCtrl.GetByID)

	officerUp := authMiddleware.OnlyRoles(
		constants.RoleErrorOfficer("event management"),
		constants.RolePC, constants.RolePO,
	)
	ev.Post("/", officerUp, evCtrl.Create)
	ev.Put("/:id", officerUp, evCtrl.Update)
	ev.Delete("/:id", officerUp, evCtrl.Delete)

	// 📄 Event reports
	scOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStudent("report submission"),
		constants.RoleSC,
	)
	ev.Post("/:id/reports", scOnly, repCtrl.Submit)

	rep := api.Group("/event-reports")
	rep.Get("/", repCtrl.List)
	rep.Get("/:id", repCtrl.GetByID)
	rep.Delete("/:id", scOnly, repCtrl.Delete)

	poOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorOfficer("report review"),
		constants.RolePO,
	)
	rep.Patch("/:id/status", poOnly, repCtrl.SetStatus)
}
