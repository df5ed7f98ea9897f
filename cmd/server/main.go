package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/usersvc/internal/config"
	"github.com/example/usersvc/internal/handlers"
	"github.com/example/usersvc/internal/metrics"
	"github.com/example/usersvc/internal/routes"
	"github.com/example/usersvc/internal/services"
	"github.com/example/usersvc/internal/utils"
)

func main() {
	cfg := config.Load()

	users, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open %s user store: %v", cfg.StoreDriver, err)
	}
	defer closeStore()

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenExpires)
	userService := services.NewUserService(users, utils.NewBcryptHasher(cfg.BcryptCost), tokens)

	app := fiber.New(fiber.Config{
		AppName:      "User Service",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, userService, metrics.New())

	log.Printf("Starting server on :%s (store: %s)", cfg.AppPort, cfg.StoreDriver)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
