package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/quizzyhq/quizzy_backend/database"
)

type UserPerformanceRow struct {
	UserID   *uuid.UUID `json:"userId"`
	Attempts int64      `json:"attempts"`
	AvgScore float64    `json:"avgScore"`
	MinScore float64    `json:"minScore"`
	MaxScore float64    `json:"maxScore"`
}

type SkillAverageRow struct {
	SkillID  int64   `json:"skillId"`
	Skill    string  `json:"skill"`
	Attempts int64   `json:"attempts"`
	AvgScore float64 `json:"avgScore"`
}

func ReportUserPerformance(c *fiber.Ctx) error {
	where := "WHERE 1=1"
	args := []interface{}{}

	if raw := c.Query("userId"); raw != "" {
		if userID, err := uuid.Parse(raw); err == nil {
			where += " AND qa.user_id = ?"
			args = append(args, userID)
		}
	}
	if from := c.Query("from"); from != "" {
		where += " AND qa.created_at >= ?::timestamptz"
		args = append(args, from)
	}
	if to := c.Query("to"); to != "" {
		where += " AND qa.created_at <= ?::timestamptz"
		args = append(args, to)
	}

	sql := `
		SELECT qa.user_id,
		       COUNT(*) AS attempts,
		       AVG(qa.score) AS avg_score,
		       MIN(qa.score) AS min_score,
		       MAX(qa.score) AS max_score
		FROM quiz_attempts qa
		` + where + `
		GROUP BY qa.user_id`

	var rows []UserPerformanceRow
	if err := database.DB.Raw(sql, args...).Scan(&rows).Error; err != nil {
		log.Printf("reportUserPerformance err: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"report": rows})
}

func ReportSkillAverages(c *fiber.Ctx) error {
	where := "WHERE 1=1"
	args := []interface{}{}

	if from := c.Query("from"); from != "" {
		where += " AND qa.created_at >= ?::timestamptz"
		args = append(args, from)
	}
	if to := c.Query("to"); to != "" {
		where += " AND qa.created_at <= ?::timestamptz"
		args = append(args, to)
	}

	sql := `
		SELECT s.id AS skill_id, s.title AS skill,
		       COUNT(qa.id) AS attempts,
		       AVG(qa.score) AS avg_score
		FROM quiz_attempts qa
		JOIN skills s ON s.id = qa.skill_id
		` + where + `
		GROUP BY s.id, s.title
		ORDER BY avg_score ASC`

	var rows []SkillAverageRow
	if err := database.DB.Raw(sql, args...).Scan(&rows).Error; err != nil {
		log.Printf("reportSkillAverages err: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"report": rows})
}
