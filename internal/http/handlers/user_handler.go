package handlers

import (
	applog "finanzas/internal/log"
	"finanzas/internal/services"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Users *services.UserService
}

type userUpdateRequest struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// GET /api/users (admin only)
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.Users.List()
	if err != nil {
		return internalError(c, "users.list.fail", err)
	}
	return c.JSON(out)
}

// PUT /api/users (admin only)
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req userUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "")
	}
	if req.ID == nil || req.Name == nil || req.Role == nil {
		return badRequest(c, "")
	}

	p, err := h.Users.Update(*req.ID, *req.Name, *req.Role)
	if err != nil {
		if services.IsValidation(err) {
			return badRequest(c, err.Error())
		}
		// An absent target surfaces like any other store failure here; the
		// users surface never exposes 404.
		return internalError(c, "users.update.fail", err)
	}

	applog.Audit(c, "users.update", map[string]any{"user_id": p.ID, "role": p.Role})
	return c.JSON(p)
}
