package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/quizzyhq/quizzy_backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrSkillRequired    = errors.New("skillId is required")
	ErrAnswersRequired  = errors.New("answers array is required")
	ErrSkillNotFound    = errors.New("invalid skillId")
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrAttemptForbidden = errors.New("access denied")
)

type SubmitAttemptInput struct {
	SkillID    int64       `json:"skillId"`
	StartedAt  *int64      `json:"startedAt"`
	FinishedAt *int64      `json:"finishedAt"`
	Answers    []RawAnswer `json:"answers"`
}

type QuestionResult struct {
	QuestionID       int64   `json:"questionId"`
	IsCorrect        bool    `json:"isCorrect"`
	PointsAwarded    float64 `json:"pointsAwarded"`
	Chosen           []int64 `json:"chosen,omitempty"`
	CorrectOptionIDs []int64 `json:"correctOptionIds,omitempty"`
}

type SubmitAttemptResult struct {
	AttemptID          int64            `json:"attemptId"`
	Score              float64          `json:"score"`
	DurationSeconds    *int             `json:"durationSeconds"`
	PerQuestionResults []QuestionResult `json:"perQuestionResults"`
}

// SubmitAttempt validates and grades a submitted answer batch, persisting the
// attempt and every answer row in one transaction. Validation failures happen
// before any row is written; any failure afterwards rolls the whole
// submission back, so a scored attempt and its answers are always committed
// together or not at all.
func SubmitAttempt(db *gorm.DB, userID *uuid.UUID, in SubmitAttemptInput) (*SubmitAttemptResult, error) {
	if in.SkillID == 0 {
		return nil, ErrSkillRequired
	}
	if len(in.Answers) == 0 {
		return nil, ErrAnswersRequired
	}

	var skill models.Skill
	if err := db.First(&skill, "id = ?", in.SkillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}

	result := &SubmitAttemptResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		attempt := models.QuizAttempt{
			UserID:  userID,
			SkillID: in.SkillID,
			Score:   0,
			Meta: datatypes.NewJSONType(models.AttemptMeta{
				StartedAt:  in.StartedAt,
				FinishedAt: in.FinishedAt,
			}),
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		snapshots, err := loadQuestionSnapshots(tx, in.Answers)
		if err != nil {
			return err
		}

		var totalScore float64
		for _, raw := range in.Answers {
			answer := NormalizeAnswer(raw)
			snapshot := snapshots[answer.QuestionID]
			graded := EvaluateAnswer(snapshot, answer.Chosen)

			row := models.AttemptAnswer{
				AttemptID:       attempt.ID,
				QuestionID:      answer.QuestionID,
				ChosenOptionIDs: datatypes.NewJSONSlice(answer.Chosen),
				IsCorrect:       graded.IsCorrect,
				PointsAwarded:   graded.PointsAwarded,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}

			totalScore += graded.PointsAwarded

			qr := QuestionResult{
				QuestionID:    answer.QuestionID,
				IsCorrect:     graded.IsCorrect,
				PointsAwarded: graded.PointsAwarded,
			}
			if snapshot != nil {
				qr.Chosen = answer.Chosen
				qr.CorrectOptionIDs = snapshot.CorrectOptionIDs
			}
			result.PerQuestionResults = append(result.PerQuestionResults, qr)
		}

		duration := DurationSeconds(in.StartedAt, in.FinishedAt)

		attempt.Score = totalScore
		attempt.DurationSeconds = duration
		if err := tx.Save(&attempt).Error; err != nil {
			return err
		}

		result.AttemptID = attempt.ID
		result.Score = totalScore
		result.DurationSeconds = duration
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetAttempt loads one attempt with its answers and skill. Only the attempt's
// owner or an admin may read it.
func GetAttempt(db *gorm.DB, attemptID int64, userID uuid.UUID, role string) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	if err := db.
		Preload("Answers").
		Preload("Skill").
		First(&attempt, "id = ?", attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}

	isOwner := attempt.UserID != nil && *attempt.UserID == userID
	if !isOwner && role != "admin" {
		return nil, ErrAttemptForbidden
	}
	return &attempt, nil
}

// loadQuestionSnapshots bulk-loads every question referenced by the batch,
// with its options, in a single query. All answers in one submission grade
// against this one snapshot of the question bank.
func loadQuestionSnapshots(tx *gorm.DB, answers []RawAnswer) (map[int64]*QuestionSnapshot, error) {
	idSet := make(map[int64]bool, len(answers))
	ids := make([]int64, 0, len(answers))
	for _, a := range answers {
		id := int64(a.QuestionID)
		if !idSet[id] {
			idSet[id] = true
			ids = append(ids, id)
		}
	}

	var questions []models.Question
	if err := tx.Preload("Options").Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}

	snapshots := make(map[int64]*QuestionSnapshot, len(questions))
	for _, q := range questions {
		snapshot := &QuestionSnapshot{
			ID:     q.ID,
			Type:   q.Type,
			Points: q.Points,
		}
		for _, opt := range q.Options {
			if opt.IsCorrect {
				snapshot.CorrectOptionIDs = append(snapshot.CorrectOptionIDs, opt.ID)
			}
		}
		snapshots[q.ID] = snapshot
	}
	return snapshots, nil
}
