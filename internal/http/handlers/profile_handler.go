package handlers

import (
	applog "finanzas/internal/log"
	"finanzas/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Users *services.UserService
}

type profileUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// GET /api/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	u := currentUser(c)
	p, err := h.Users.Profile(u.ID)
	if err != nil {
		return serviceError(c, "profile.get.fail", err)
	}
	return c.JSON(p)
}

// PUT /api/profile — the caller may only edit their own name and email.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req profileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "")
	}
	if req.Name == nil || req.Email == nil {
		return badRequest(c, "")
	}

	u := currentUser(c)
	p, err := h.Users.UpdateProfile(u.ID, *req.Name, *req.Email)
	if err != nil {
		return serviceError(c, "profile.update.fail", err)
	}

	applog.Audit(c, "profile.update", map[string]any{"user_id": u.ID})
	return c.JSON(p)
}
