package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nssportal_backend/internals/constants"
	"nssportal_backend/internals/features/approval/engine"
)

// PrincipalFromLocals rebuilds the request Principal from the claims the
// auth middleware stored. Controllers call this once per handler.
func PrincipalFromLocals(c *fiber.Ctx) (engine.Principal, error) {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return engine.Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing user ID")
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return engine.Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: invalid user ID")
	}

	roleStr, _ := c.Locals("userRole").(string)
	role, ok := constants.ParseRole(roleStr)
	if !ok {
		return engine.Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: unknown role")
	}

	p := engine.Principal{UserID: userID, Role: role}
	if deptStr, ok := c.Locals("department_id").(string); ok && deptStr != "" {
		if deptID, err := uuid.Parse(deptStr); err == nil {
			p.DepartmentID = &deptID
		}
	}
	return p, nil
}
