package auth

import (
	"github.com/gofiber/fiber/v2"

	"nssportal_backend/internals/constants"
)

// RoleMiddlewareWithCustomError validates role + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []constants.Role, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleStr, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		role := constants.Role(roleStr)
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// OnlyRoles is the short form used at mount sites
func OnlyRoles(customMessage string, roles ...constants.Role) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
