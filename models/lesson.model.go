package models

// Lesson belongs to a course. Order defines the unlock sequence within the
// course: the lowest order unlocks on enrollment, each next order unlocks on
// a passing quiz submission for the previous one.
type Lesson struct {
	Model
	CourseID      string `gorm:"type:uuid;index;not null" json:"course_id"`
	Title         string `gorm:"not null" json:"title"`
	VideoURL      string `gorm:"default:''" json:"video_url"`
	Order         int    `gorm:"column:lesson_order;default:0" json:"order"`
	IsFreePreview bool   `gorm:"default:false" json:"is_free_preview"`
}
