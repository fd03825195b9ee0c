package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/quizzyhq/quizzy_backend/database"
	"github.com/quizzyhq/quizzy_backend/models"
	"github.com/quizzyhq/quizzy_backend/services"
)

const myAttemptsLimit = 100

// currentIdentity pulls the authenticated user id and role out of the JWT
// attached by the Protected middleware.
func currentIdentity(c *fiber.Ctx) (uuid.UUID, string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, "", errors.New("missing identity")
	}
	claims := token.Claims.(jwt.MapClaims)
	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, _ := claims["role"].(string)
	return userID, role, nil
}

func SubmitAttempt(c *fiber.Ctx) error {
	userID, _, err := currentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var input services.SubmitAttemptInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	result, err := services.SubmitAttempt(database.DB, &userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSkillRequired),
			errors.Is(err, services.ErrAnswersRequired),
			errors.Is(err, services.ErrSkillNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("submitAttempt err: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save attempt"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":            "Attempt submitted",
		"attemptId":          result.AttemptID,
		"score":              result.Score,
		"durationSeconds":    result.DurationSeconds,
		"perQuestionResults": result.PerQuestionResults,
	})
}

func ListMyAttempts(c *fiber.Ctx) error {
	userID, _, err := currentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var attempts []models.QuizAttempt
	if err := database.DB.
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(myAttemptsLimit).
		Find(&attempts).Error; err != nil {
		log.Printf("listMyAttempts err: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"attempts": attempts})
}

func GetAttemptDetail(c *fiber.Ctx) error {
	userID, role, err := currentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	attemptID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attempt not found"})
	}

	attempt, err := services.GetAttempt(database.DB, attemptID, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAttemptNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attempt not found"})
		case errors.Is(err, services.ErrAttemptForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
		default:
			log.Printf("getAttemptDetail err: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
	}

	return c.JSON(fiber.Map{"attempt": attempt})
}
