package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialspace/internal/handlers"
	"socialspace/internal/middleware"
	"socialspace/internal/service"
	"socialspace/internal/store"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	Store     store.Store
	Posts     *service.PostService
	JWTSecret string
}

// Register mounts all HTTP routes in one place.
func Register(app *fiber.App, d Deps) {
	app.Use(middleware.JWTAuth(d.JWTSecret))

	auth := handlers.NewAuthHandler(d.Store, []byte(d.JWTSecret))
	posts := handlers.NewPostHandler(d.Posts)

	users := app.Group("/users")
	users.Post("/register", auth.Register)
	users.Post("/login", auth.Login)

	p := app.Group("/posts", middleware.RequireAuth())
	p.Post("/", posts.Create)
	p.Get("/", posts.List)
	// /me before /:id so "me" never matches as a post id
	p.Get("/me", posts.ListMine)
	p.Get("/:id", posts.Get)
	p.Patch("/:id", posts.Update)
	p.Delete("/:id", posts.Delete)

	// Health check
	// GET /healthz → "ok"
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}
