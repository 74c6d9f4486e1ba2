package handlers

import (
	"fmt"
	"time"

	applog "finanzas/internal/log"
	"finanzas/internal/services"
	"finanzas/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	Reports *services.ReportService
}

// reportRange reads from/to query params, defaulting to the trailing year.
func reportRange(c *fiber.Ctx) (string, string) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -365).Format("2006-01-02")
	to := now.Format("2006-01-02")
	if f, ok := validate.Fecha(c.Query("from")); ok {
		from = f
	}
	if t, ok := validate.Fecha(c.Query("to")); ok {
		to = t
	}
	return from, to
}

// GET /reports (admin only)
func (h *ReportHandler) Page(c *fiber.Ctx) error {
	from, to := reportRange(c)
	rep, err := h.Reports.Build(from, to)
	if err != nil {
		applog.Error(c, "reports.build.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not build report"})
	}
	return render(c, "reports", fiber.Map{
		"From":    rep.From,
		"To":      rep.To,
		"Count":   rep.Count,
		"Daily":   rep.Daily,
		"Income":  rep.Income,
		"Expense": rep.Expense,
		"Balance": rep.Balance,
	})
}

// GET /reports/export.csv?kind=daily|split (admin only)
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	from, to := reportRange(c)
	rep, err := h.Reports.Build(from, to)
	if err != nil {
		return internalError(c, "reports.export.fail", err)
	}

	kind := c.Query("kind", "daily")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte-%s-%s_%s.csv"`, kind, rep.From, rep.To))

	w := c.Response().BodyWriter()
	switch kind {
	case "daily":
		err = h.Reports.WriteDailyCSV(w, rep)
	case "split":
		err = h.Reports.WriteSplitCSV(w, rep)
	default:
		return badRequest(c, "kind must be daily or split")
	}
	if err != nil {
		return internalError(c, "reports.export.fail", err)
	}
	applog.Audit(c, "reports.export", map[string]any{"kind": kind, "from": rep.From, "to": rep.To})
	return nil
}
