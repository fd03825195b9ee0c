package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttemptMeta is stored as the JSON meta column on a quiz attempt.
// Timestamps are epoch milliseconds as submitted by the client.
type AttemptMeta struct {
	StartedAt  *int64 `json:"startedAt"`
	FinishedAt *int64 `json:"finishedAt"`
}

type QuizAttempt struct {
	ID              int64                           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          *uuid.UUID                      `gorm:"type:uuid;index" json:"user_id"`
	SkillID         int64                           `gorm:"not null;index" json:"skill_id"`
	Score           float64                         `gorm:"not null;default:0" json:"score"`
	DurationSeconds *int                            `json:"duration_seconds"`
	Meta            datatypes.JSONType[AttemptMeta] `json:"meta"`

	User    *User           `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
	Skill   Skill           `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
	Answers []AttemptAnswer `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (QuizAttempt) TableName() string { return "quiz_attempts" }
