package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"finanzas/internal/config"
	"finanzas/internal/http/handlers"
	"finanzas/internal/repos"
	"finanzas/internal/services"
)

// newAPIApp builds a minimal app exposing the JSON API over a fresh seeded
// in-memory store, with two pre-bound sessions: sid-admin (u-admin, role
// admin) and sid-user (u-user1, role user).
func newAPIApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	decimal.MarshalJSONWithoutQuotes = true

	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	deps := handlers.NewDeps(db, config.Config{DBDSN: ":memory:"}, authSvc)

	app := fiber.New()
	app.Get("/api/docs", handlers.Docs)
	api := app.Group("/api", handlers.Session(authSvc))
	api.Get("/transactions", deps.TransactionHandler.List)
	api.Post("/transactions", handlers.Require("transactions", "create"), deps.TransactionHandler.Create)
	api.All("/transactions", handlers.MethodNotAllowed)
	api.Get("/users", handlers.Require("users", "list"), deps.UserHandler.List)
	api.Put("/users", handlers.Require("users", "update"), deps.UserHandler.Update)
	api.All("/users", handlers.MethodNotAllowed)
	api.Get("/profile", deps.ProfileHandler.Get)
	api.Put("/profile", deps.ProfileHandler.Update)
	api.All("/profile", handlers.MethodNotAllowed)

	require.NoError(t, userRepo.BindSession("sid-admin", "u-admin"))
	require.NoError(t, userRepo.BindSession("sid-user", "u-user1"))
	return app, db
}

func apiReq(t *testing.T, app *fiber.App, method, path, sid string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func txnCount(t *testing.T, db *sqlx.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM transactions`))
	return n
}
