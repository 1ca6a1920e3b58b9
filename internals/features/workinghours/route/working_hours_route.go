package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nssportal_backend/internals/constants"
	"nssportal_backend/internals/features/workinghours/controller"
	authMiddleware "nssportal_backend/internals/middlewares/auth"
)

func WorkingHoursRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWorkingHoursController(db)

	wh := api.Group("/working-hours")
	wh.Get("/", ctrl.List)
	wh.Get("/:id", ctrl.GetByID)

	scOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStudent("working-hours submission"),
		constants.RoleSC,
	)
	wh.Post("/", scOnly, ctrl.Create)
	wh.Put("/:id", scOnly, ctrl.Update)
	wh.Delete("/:id", scOnly, ctrl.Delete)

	poOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorOfficer("working-hours review"),
		constants.RolePO,
	)
	wh.Patch("/:id/status", poOnly, ctrl.SetStatus)
}
