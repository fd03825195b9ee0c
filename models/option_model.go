package models

import "time"

type Option struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID int64  `gorm:"not null;index" json:"question_id"`
	Key        string `gorm:"size:2;not null" json:"key"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"is_correct"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
