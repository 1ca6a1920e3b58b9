package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"nssportal_backend/internals/features/approval/engine"
)

// EngineError maps the engine failure taxonomy onto the JSON envelope.
// NotFound and Forbidden collapse to one 404 so responses never leak the
// existence of rows outside the caller's scope.
func EngineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, engine.ErrNotFound), errors.Is(err, engine.ErrForbidden):
		return Error(c, fiber.StatusNotFound, "Record not found")
	case errors.Is(err, engine.ErrUnauthenticated):
		return Error(c, fiber.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, engine.ErrDepartmentUnresolved):
		return Error(c, fiber.StatusUnprocessableEntity, "Department for this account could not be resolved")
	case engine.IsDuplicateSubmission(err):
		return Error(c, fiber.StatusConflict, "A report for this event has already been submitted")
	default:
		if td, ok := engine.IsTransitionDenied(err); ok {
			return Error(c, fiber.StatusConflict, fmt.Sprintf("Transition denied: %s", td.Reason))
		}
		return Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
