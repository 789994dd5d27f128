package models

type Feedback struct {
	Model
	UserID  string `gorm:"type:uuid;index;not null" json:"user_id"`
	Message string `gorm:"type:text;not null" json:"message"`
	Rating  *int   `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"`
	Context string `gorm:"default:''" json:"context"`
}
