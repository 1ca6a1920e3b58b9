package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nssportal_backend/internals/features/volunteers/controller"
)

func VolunteerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVolunteerController(db)

	// visibility and mutation rights are decided by the engine per row, so
	// every authenticated role enters here
	vol := api.Group("/volunteers")
	vol.Post("/", ctrl.Create)
	vol.Get("/", ctrl.List)
	vol.Get("/:id", ctrl.GetByID)
	vol.Put("/:id", ctrl.Update)
	vol.Post("/:id/photo", ctrl.UploadPhoto)
	vol.Delete("/:id", ctrl.Delete)
}
