package models

// Notification types
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification is appended alongside wallet ops and read back by its owner.
type Notification struct {
	Model
	UserID  string `gorm:"type:uuid;index;not null" json:"user_id"`
	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`
	Type    string `gorm:"default:'info'" json:"type"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`
}
