package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nssportal_backend/internals/constants"
	"nssportal_backend/internals/features/departments/controller"
	authMiddleware "nssportal_backend/internals/middlewares/auth"
)

func DepartmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartmentController(db)

	dept := api.Group("/departments")
	dept.Get("/", ctrl.List)
	dept.Get("/:id", ctrl.GetByID)

	pcOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorCoordinator("department management"),
		constants.RolePC,
	)
	dept.Post("/", pcOnly, ctrl.Create)
	dept.Put("/:id", pcOnly, ctrl.Update)
	dept.Delete("/:id", pcOnly, ctrl.Delete)
}
