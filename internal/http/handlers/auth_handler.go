package handlers

import (
	"time"

	"finanzas/internal/log"
	"finanzas/internal/services"
	"finanzas/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok || pass == "" {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, "signup", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	sid := ensureSID(c)
	name := c.FormValue("name")
	email := c.FormValue("email")
	pass := c.FormValue("password")
	confirm := c.FormValue("confirm_password")

	fail := func(msg string) error {
		return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{"Err": msg, "CSRFToken": c.Cookies("csrf_")})
	}

	name, ok := validate.Name(name)
	if !ok {
		return fail("Name must be at least 2 characters")
	}
	email, ok = validate.Email(email)
	if !ok {
		return fail("Enter a valid email address")
	}
	if !validate.Password(pass) {
		return fail("Password must be at least 8 characters")
	}
	if pass != confirm {
		return fail("Passwords do not match")
	}

	u, err := h.Auth.Signup(sid, name, email, pass)
	if err == services.ErrEmailTaken {
		return fail("Email already registered")
	}
	if err != nil {
		log.Error(c, "auth.signup.fail", err, map[string]any{"email": email})
		return c.Status(fiber.StatusInternalServerError).Render("signup", fiber.Map{"Err": "Something went wrong. Please try again.", "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.signup.success", map[string]any{"user_id": u.ID, "email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/login")
}
