package models

// Enrollment statuses
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
)

// Enrollment ties a user to a course, one per (user, course) pair. The pair
// is checked on enroll, not unique-constrained.
type Enrollment struct {
	Model
	UserID   string `gorm:"type:uuid;index;not null" json:"user_id"`
	CourseID string `gorm:"type:uuid;index;not null" json:"course_id"`
	Status   string `gorm:"default:'active'" json:"status"`
}
