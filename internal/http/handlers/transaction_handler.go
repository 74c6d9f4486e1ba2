package handlers

import (
	applog "finanzas/internal/log"
	"finanzas/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	Txns *services.TransactionService
}

// Pointer fields distinguish absent from zero-valued; monto accepts a JSON
// number or a numeric string.
type transactionRequest struct {
	Concepto *string          `json:"concepto"`
	Monto    *decimal.Decimal `json:"monto"`
	Fecha    *string          `json:"fecha"`
}

// GET /api/transactions
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.Txns.List()
	if err != nil {
		return internalError(c, "transactions.list.fail", err)
	}
	return c.JSON(out)
}

// POST /api/transactions (admin only, enforced by the route guard)
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req transactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "")
	}
	if req.Concepto == nil || req.Monto == nil || req.Fecha == nil {
		return badRequest(c, "")
	}

	created, err := h.Txns.Create(currentUser(c), services.TransactionInput{
		Concepto: *req.Concepto,
		Monto:    *req.Monto,
		Fecha:    *req.Fecha,
	})
	if err != nil {
		return serviceError(c, "transactions.create.fail", err)
	}

	applog.Audit(c, "transactions.create", map[string]any{"id": created.ID, "monto": created.Monto.String()})
	return c.Status(fiber.StatusCreated).JSON(created)
}
