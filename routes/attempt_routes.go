package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quizzyhq/quizzy_backend/handlers"
	"github.com/quizzyhq/quizzy_backend/middleware"
)

func AttemptRoutes(app *fiber.App) {
	attempts := app.Group("/api/attempts", middleware.Protected())

	attempts.Post("/submit", handlers.SubmitAttempt)
	attempts.Get("/my", handlers.ListMyAttempts)

	reports := attempts.Group("/reports", middleware.AdminRequired())
	reports.Get("/user-performance", handlers.ReportUserPerformance)
	reports.Get("/skill-averages", handlers.ReportSkillAverages)

	attempts.Get("/:id", handlers.GetAttemptDetail)
}
