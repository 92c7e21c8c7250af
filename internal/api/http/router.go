package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kawaf/petcafe-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Animals *handlers.AnimalsHandler
	Menu    *handlers.MenuHandler
	Events  *handlers.EventsHandler
	Users   *handlers.UsersHandler
}

// RegisterRoutes wires HTTP routes. There is no route-level auth
// middleware: every handler resolves its own auth status so public
// reads and policy-gated mutations share one uniform path.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	animals := api.Group("/animals")
	animals.Get("/", cfg.Animals.List)
	animals.Post("/", cfg.Animals.Create)
	animals.Get("/:id", cfg.Animals.Get)
	animals.Put("/:id", cfg.Animals.Update)
	animals.Delete("/:id", cfg.Animals.Delete)

	menu := api.Group("/menu")
	menu.Get("/", cfg.Menu.List)
	menu.Post("/", cfg.Menu.Create)
	menu.Get("/:id", cfg.Menu.Get)
	menu.Put("/:id", cfg.Menu.Update)
	menu.Delete("/:id", cfg.Menu.Delete)

	events := api.Group("/events")
	events.Get("/", cfg.Events.List)
	events.Post("/", cfg.Events.Create)
	events.Get("/:id", cfg.Events.Get)
	events.Put("/:id", cfg.Events.Update)
	events.Delete("/:id", cfg.Events.Delete)

	user := api.Group("/user")
	user.Post("/login", cfg.Auth.Login)
	user.Post("/change-password", cfg.Auth.ChangePassword)
	user.Get("/", cfg.Users.List)
	user.Post("/", cfg.Users.Create)
	user.Put("/:id", cfg.Users.Update)
	user.Delete("/:id", cfg.Users.Delete)
}
