package models

// LessonProgress tracks per (user, lesson) unlock and completion state,
// upserted by enrollment, quiz submission and admin override.
type LessonProgress struct {
	Model
	UserID      string `gorm:"type:uuid;index;not null" json:"user_id"`
	CourseID    string `gorm:"type:uuid;index;not null" json:"course_id"`
	LessonID    string `gorm:"type:uuid;index;not null" json:"lesson_id"`
	IsUnlocked  bool   `gorm:"default:false" json:"is_unlocked"`
	IsCompleted bool   `gorm:"default:false" json:"is_completed"`
	QuizScore   *int   `json:"quiz_score"`
	QuizTotal   *int   `json:"quiz_total"`
}
