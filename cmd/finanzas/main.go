package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"finanzas/internal/config"
	"finanzas/internal/http/handlers"
	applog "finanzas/internal/log"
	"finanzas/internal/repos"
	"finanzas/internal/services"
)

func main() {
	cfg := config.Load()

	// The API emits monto as a JSON number, matching the stored wire format.
	decimal.MarshalJSONWithoutQuotes = true

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
			}
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))
	// CSRF guards the form posts; the JSON API is session-cookie gated and
	// method-guarded on its own.
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, authSvc)

	// Auth routes (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Get("/signup", authH.SignupForm)
	app.Post("/signup", authH.Signup)
	app.Post("/logout", authH.Logout)

	// Pages
	app.Get("/", handlers.RequireUser(authSvc), deps.PageHandler.Dashboard)
	app.Get("/transactions", handlers.RequireUser(authSvc), deps.PageHandler.Transactions)
	app.Post("/transactions", handlers.RequireUser(authSvc), deps.PageHandler.CreateTransaction)
	app.Get("/profile", handlers.RequireUser(authSvc), deps.PageHandler.ProfilePage)
	app.Post("/profile", handlers.RequireUser(authSvc), deps.PageHandler.UpdateProfile)

	users := app.Group("/users", handlers.RequireRole(authSvc, "users", "list"))
	users.Get("/", deps.PageHandler.UsersPage)
	users.Post("/:id", deps.PageHandler.UpdateUser)

	reports := app.Group("/reports", handlers.RequireRole(authSvc, "reports", "view"))
	reports.Get("/", deps.ReportHandler.Page)
	reports.Get("/export.csv", deps.ReportHandler.Export)

	// JSON API (docs registered first so they stay outside the session gate)
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

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
