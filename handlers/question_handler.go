package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quizzyhq/quizzy_backend/database"
	"github.com/quizzyhq/quizzy_backend/models"
	"github.com/quizzyhq/quizzy_backend/utils"
	"gorm.io/gorm"
)

type CreateQuestionRequest struct {
	SkillID      int64             `json:"skillId" validate:"required"`
	QuestionText string            `json:"questionText" validate:"required"`
	Type         string            `json:"type"`
	Points       *float64          `json:"points"`
	Options      []utils.RawOption `json:"options"`
}

type UpdateQuestionRequest struct {
	QuestionText *string           `json:"questionText"`
	Type         *string           `json:"type"`
	Points       *float64          `json:"points"`
	Options      []utils.RawOption `json:"options"`
}

// validateOptionSet enforces the authoring invariants for non-text questions:
// 2..4 options, single-choice has exactly one correct option, multiple-choice
// has at least one. Returns an error message suitable for the client, or "".
func validateOptionSet(questionType string, normalized []utils.NormalizedOption) string {
	if len(normalized) < 2 || len(normalized) > 4 {
		return "Options must be an array of 2..4 items"
	}
	correctCount := utils.CountCorrect(normalized)
	if questionType == models.QuestionTypeSingle && correctCount != 1 {
		return "single questions must have exactly 1 option with isCorrect=true"
	}
	if questionType == models.QuestionTypeMultiple && correctCount < 1 {
		return "multiple questions must have at least 1 correct option"
	}
	return ""
}

func CreateQuestion(c *fiber.Ctx) error {
	var req CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	questionType := req.Type
	if questionType == "" {
		questionType = models.QuestionTypeSingle
	}
	if !models.ValidQuestionType(questionType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question type"})
	}

	var skill models.Skill
	if err := database.DB.First(&skill, "id = ?", req.SkillID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid skillId"})
	}

	points := 1.0
	if req.Points != nil {
		points = *req.Points
	}

	var normalized []utils.NormalizedOption
	if questionType != models.QuestionTypeText {
		normalized = utils.NormalizeOptions(req.Options)
		if msg := validateOptionSet(questionType, normalized); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	var question models.Question
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		question = models.Question{
			SkillID:      req.SkillID,
			QuestionText: req.QuestionText,
			Type:         questionType,
			Points:       points,
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}

		for _, opt := range normalized {
			option := models.Option{
				QuestionID: question.ID,
				Key:        opt.Key,
				Text:       opt.Text,
				IsCorrect:  opt.IsCorrect,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create question"})
	}

	var created models.Question
	if err := database.DB.Preload("Options").First(&created, "id = ?", question.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load created question"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Question created", "question": created})
}

func UpdateQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")

	var req UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.Type != nil && models.ValidQuestionType(*req.Type) {
		question.Type = *req.Type
	}
	if req.Points != nil {
		question.Points = *req.Points
	}

	var normalized []utils.NormalizedOption
	replaceOptions := req.Options != nil
	if replaceOptions && question.Type != models.QuestionTypeText {
		normalized = utils.NormalizeOptions(req.Options)
		if msg := validateOptionSet(question.Type, normalized); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&question).Error; err != nil {
			return err
		}

		if replaceOptions {
			if err := tx.Delete(&models.Option{}, "question_id = ?", question.ID).Error; err != nil {
				return err
			}
			for _, opt := range normalized {
				option := models.Option{
					QuestionID: question.ID,
					Key:        opt.Key,
					Text:       opt.Text,
					IsCorrect:  opt.IsCorrect,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update question"})
	}

	var updated models.Question
	if err := database.DB.Preload("Options").First(&updated, "id = ?", question.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load updated question"})
	}
	return c.JSON(fiber.Map{"message": "Question updated", "question": updated})
}

func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")

	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Option{}, "question_id = ?", question.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&question).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete question"})
	}

	return c.JSON(fiber.Map{"message": "Question deleted"})
}

func ListQuestions(c *fiber.Ctx) error {
	query := database.DB.Preload("Options").Preload("Skill").Order("created_at DESC")
	if skillID := c.Query("skillId"); skillID != "" {
		query = query.Where("skill_id = ?", skillID)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"questions": questions})
}
