package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quizzyhq/quizzy_backend/handlers"
	"github.com/quizzyhq/quizzy_backend/middleware"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)

	auth.Get("/users", middleware.Protected(), middleware.AdminRequired(), handlers.GetAllUsers)
}
