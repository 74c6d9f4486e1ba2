package handlers

import (
	applog "finanzas/internal/log"
	"finanzas/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// PageHandler serves the server-rendered pages. Forms post back here and
// redirect to their list page on success, so every successful mutation lands
// on freshly fetched data; on failure the page re-renders with the message
// beside the form and nothing else changed.
type PageHandler struct {
	Txns  *services.TransactionService
	Users *services.UserService
}

// GET /
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, "dashboard", fiber.Map{})
}

// GET /transactions
func (h *PageHandler) Transactions(c *fiber.Ctx) error {
	return h.transactionsPage(c, fiber.StatusOK, "")
}

func (h *PageHandler) transactionsPage(c *fiber.Ctx, status int, errMsg string) error {
	list, err := h.Txns.List()
	if err != nil {
		applog.Error(c, "transactions.page.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load transactions"})
	}
	c.Status(status)
	return render(c, "transactions", fiber.Map{"Transactions": list, "Err": errMsg})
}

// POST /transactions — admin-only create, mirroring the API handler over a
// form body.
func (h *PageHandler) CreateTransaction(c *fiber.Ctx) error {
	u := currentUser(c)
	if !services.Allowed(u, "transactions", "create") {
		applog.Security(c, "access.denied", map[string]any{"resource": "transactions", "action": "create"})
		return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
	}

	monto, err := decimal.NewFromString(c.FormValue("monto"))
	if err != nil {
		return h.transactionsPage(c, fiber.StatusBadRequest, "monto must be a number")
	}
	_, err = h.Txns.Create(u, services.TransactionInput{
		Concepto: c.FormValue("concepto"),
		Monto:    monto,
		Fecha:    c.FormValue("fecha"),
	})
	if err != nil {
		if services.IsValidation(err) {
			return h.transactionsPage(c, fiber.StatusBadRequest, err.Error())
		}
		applog.Error(c, "transactions.create.fail", err, nil)
		return h.transactionsPage(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.Redirect("/transactions")
}

// GET /users (admin only via route guard)
func (h *PageHandler) UsersPage(c *fiber.Ctx) error {
	return h.usersPage(c, fiber.StatusOK, "")
}

func (h *PageHandler) usersPage(c *fiber.Ctx, status int, errMsg string) error {
	list, err := h.Users.List()
	if err != nil {
		applog.Error(c, "users.page.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load users"})
	}
	c.Status(status)
	return render(c, "users", fiber.Map{"Users": list, "Err": errMsg})
}

// POST /users/:id
func (h *PageHandler) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	p, err := h.Users.Update(id, c.FormValue("name"), c.FormValue("role"))
	if err != nil {
		if services.IsValidation(err) {
			return h.usersPage(c, fiber.StatusBadRequest, err.Error())
		}
		applog.Error(c, "users.update.fail", err, map[string]any{"user_id": id})
		return h.usersPage(c, fiber.StatusInternalServerError, "Internal server error")
	}
	applog.Audit(c, "users.update", map[string]any{"user_id": p.ID, "role": p.Role})
	return c.Redirect("/users")
}

// GET /profile
func (h *PageHandler) ProfilePage(c *fiber.Ctx) error {
	return h.profilePage(c, fiber.StatusOK, "")
}

func (h *PageHandler) profilePage(c *fiber.Ctx, status int, errMsg string) error {
	u := currentUser(c)
	p, err := h.Users.Profile(u.ID)
	if err != nil {
		applog.Error(c, "profile.page.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load profile"})
	}
	c.Status(status)
	return render(c, "profile", fiber.Map{"Profile": p, "Err": errMsg})
}

// POST /profile
func (h *PageHandler) UpdateProfile(c *fiber.Ctx) error {
	u := currentUser(c)
	_, err := h.Users.UpdateProfile(u.ID, c.FormValue("name"), c.FormValue("email"))
	if err != nil {
		if services.IsValidation(err) {
			return h.profilePage(c, fiber.StatusBadRequest, err.Error())
		}
		applog.Error(c, "profile.update.fail", err, map[string]any{"user_id": u.ID})
		return h.profilePage(c, fiber.StatusInternalServerError, "Internal server error")
	}
	applog.Audit(c, "profile.update", map[string]any{"user_id": u.ID})
	return c.Redirect("/profile")
}
