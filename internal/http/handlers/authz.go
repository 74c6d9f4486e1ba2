package handlers

import (
	applog "finanzas/internal/log"
	"finanzas/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Session is the API session gate: it resolves the sid cookie to a user or
// rejects with 401 before any store write can happen.
func Session(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return unauthorized(c)
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return unauthorized(c)
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// Require enforces the policy table entry for resource/action on an API
// route. Runs after Session.
func Require(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := currentUser(c)
		if !services.Allowed(u, resource, action) {
			applog.Security(c, "access.denied", map[string]any{"resource": resource, "action": action})
			return forbidden(c)
		}
		return c.Next()
	}
}

// RequireUser enforces that a user is logged in on a page route; otherwise
// redirect to login.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireRole guards a page route with the policy table.
func RequireRole(auth *services.AuthService, resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		if !services.Allowed(u, resource, action) {
			applog.Security(c, "access.denied", map[string]any{"resource": resource, "action": action, "sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
