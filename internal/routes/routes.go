package routes

import (
	"time"

	"github.com/Man-HUAJI/Second-hand-Trading/internal/config"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/handlers"
	"github.com/Man-HUAJI/Second-hand-Trading/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	categoryHandler *handlers.CategoryHandler,
	itemHandler *handlers.ItemHandler,
	reviewHandler *handlers.ReviewHandler,
	profileHandler *handlers.ProfileHandler,
	uploadHandler *handlers.UploadHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public but gets a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Public browsing
	api.Get("/categories", categoryHandler.List)
	api.Get("/categories/:slug", categoryHandler.GetBySlug)
	api.Get("/items", itemHandler.List)
	api.Get("/items/latest", itemHandler.Latest)
	api.Get("/items/:id", itemHandler.Get)
	api.Get("/users/:username/profile", profileHandler.GetPublic)
	api.Get("/users/:id/reviews", reviewHandler.ListForUser)

	// Authenticated marketplace actions
	protected := api.Group("", middleware.JWTProtected(cfg))
	protected.Post("/items", itemHandler.Create)
	protected.Put("/items/:id", itemHandler.Update)
	protected.Post("/items/:id/toggle", itemHandler.ToggleStatus)
	protected.Post("/items/:id/sold", itemHandler.MarkSold)
	protected.Get("/my/items", itemHandler.Mine)
	protected.Get("/my/dashboard", profileHandler.Dashboard)
	protected.Put("/my/profile", profileHandler.Update)
	protected.Post("/reviews", reviewHandler.Create)
	protected.Post("/uploads", uploadHandler.UploadImage)

	// Category management is an admin concern
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/categories", categoryHandler.Create)
	admin.Delete("/categories/:id", categoryHandler.Delete)
}
