package models

// Course represents a learning course
type Course struct {
	Model
	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text;default:''" json:"description"`
	Category     string `gorm:"index;not null" json:"category"`
	Subcategory  string `gorm:"index;default:''" json:"subcategory"`
	ThumbnailURL string `gorm:"default:''" json:"thumbnail_url"`
	IsPublished  bool   `gorm:"default:true" json:"is_published"`
	PriceRupees  int    `gorm:"default:0" json:"price_rupees"`
}
