package models

import "gorm.io/datatypes"

// DefaultPassPercentage applies when a quiz is created without a threshold.
const DefaultPassPercentage = 60

// Quiz holds the questions for a lesson, one quiz per lesson (upsert by
// lesson_id replaces the whole document).
type Quiz struct {
	Model
	LessonID       string     `gorm:"type:uuid;uniqueIndex;not null" json:"lesson_id"`
	PassPercentage int        `gorm:"default:60" json:"pass_percentage"`
	Questions      []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions"`
}

// Question is embedded in a quiz. CorrectIndex must index Options; Points
// defaults to 1.
type Question struct {
	Model
	QuizID       string         `gorm:"type:uuid;index;not null" json:"-"`
	Prompt       string         `gorm:"type:text;not null" json:"prompt"`
	Options      datatypes.JSON `gorm:"not null" json:"options"`
	CorrectIndex int            `gorm:"default:0" json:"correct_index"`
	Points       int            `gorm:"default:1" json:"points"`
	OrderIndex   int            `gorm:"default:0" json:"-"`
}
