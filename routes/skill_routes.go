package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quizzyhq/quizzy_backend/handlers"
	"github.com/quizzyhq/quizzy_backend/middleware"
)

func SkillRoutes(app *fiber.App) {
	skill := app.Group("/api/skill", middleware.Protected())

	skill.Get("", handlers.ListSkills)

	skill.Post("", middleware.AdminRequired(), handlers.CreateSkill)
	skill.Put("/:skillId", middleware.AdminRequired(), handlers.UpdateSkill)
	skill.Delete("/:skillId", middleware.AdminRequired(), handlers.DeleteSkill)
}
