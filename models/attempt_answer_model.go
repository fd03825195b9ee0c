package models

import (
	"time"

	"gorm.io/datatypes"
)

type AttemptAnswer struct {
	ID              int64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	AttemptID       int64                      `gorm:"not null;index" json:"attempt_id"`
	QuestionID      int64                      `gorm:"not null" json:"question_id"`
	ChosenOptionIDs datatypes.JSONSlice[int64] `gorm:"not null" json:"chosen_option_ids"`
	IsCorrect       bool                       `gorm:"not null" json:"is_correct"`
	PointsAwarded   float64                    `gorm:"not null;default:0" json:"points_awarded"`

	Attempt QuizAttempt `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AttemptAnswer) TableName() string { return "attempt_answers" }
