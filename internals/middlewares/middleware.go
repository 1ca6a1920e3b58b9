package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"nssportal_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the base middleware chain.
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Setting up base middlewares...")
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
