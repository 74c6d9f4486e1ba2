package handlers

import (
	"finanzas/internal/domain"
	applog "finanzas/internal/log"
	"finanzas/internal/services"

	"github.com/gofiber/fiber/v2"
)

// JSON bodies mirror the error taxonomy: every failure carries a single
// message the client surfaces verbatim.

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden: Admin access required"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	if msg == "" {
		msg = "Missing required fields"
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": msg})
}

// internalError hides store detail behind a generic message.
func internalError(c *fiber.Ctx, action string, err error) error {
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
}

// MethodNotAllowed is the catch-all for API routes whose method is not part
// of the surface.
func MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"message": "Method not allowed"})
}

// serviceError maps a service failure onto the taxonomy.
func serviceError(c *fiber.Ctx, action string, err error) error {
	if services.IsValidation(err) {
		return badRequest(c, err.Error())
	}
	if err == services.ErrNotFound {
		return notFound(c, "User not found")
	}
	return internalError(c, action, err)
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
