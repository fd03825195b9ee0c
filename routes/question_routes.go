package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quizzyhq/quizzy_backend/handlers"
	"github.com/quizzyhq/quizzy_backend/middleware"
)

func QuestionRoutes(app *fiber.App) {
	questions := app.Group("/api/questions", middleware.Protected())

	questions.Get("", handlers.ListQuestions)

	questions.Post("", middleware.AdminRequired(), handlers.CreateQuestion)
	questions.Put("/:questionId", middleware.AdminRequired(), handlers.UpdateQuestion)
	questions.Delete("/:questionId", middleware.AdminRequired(), handlers.DeleteQuestion)
}
