package models

import "time"

type Skill struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"size:255;not null" json:"title"`

	Questions []Question `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
