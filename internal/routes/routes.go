package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/usersvc/internal/handlers"
	"github.com/example/usersvc/internal/metrics"
	"github.com/example/usersvc/internal/middleware"
	"github.com/example/usersvc/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, users *services.UserService, m *metrics.Metrics) {
	userHandler := handlers.NewUserHandler(users, m)

	app.Get("/metrics", m.Handler())

	usersGroup := app.Group("/users")
	usersGroup.Post("/sign-up", userHandler.SignUp)
	usersGroup.Get("/login", middleware.BearerToken(), userHandler.Login)
}
