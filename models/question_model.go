package models

import "time"

const (
	QuestionTypeSingle   = "single"
	QuestionTypeMultiple = "multiple"
	QuestionTypeText     = "text"
)

// ValidQuestionType reports whether t is one of the supported question types.
func ValidQuestionType(t string) bool {
	return t == QuestionTypeSingle || t == QuestionTypeMultiple || t == QuestionTypeText
}

type Question struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	SkillID      int64   `gorm:"not null;index" json:"skill_id"`
	QuestionText string  `gorm:"type:text;not null" json:"question_text"`
	Type         string  `gorm:"size:20;not null;default:'single'" json:"type"`
	Points       float64 `gorm:"not null;default:1" json:"points"`

	Skill   Skill    `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
