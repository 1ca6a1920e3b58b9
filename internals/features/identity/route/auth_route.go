package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nssportal_backend/internals/features/identity/controller"
	"nssportal_backend/internals/middlewares"
	authMiddleware "nssportal_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/logout", ctrl.Logout)

	auth.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
}
