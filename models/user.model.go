package models

// User roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	Model
	Name      string `gorm:"default:''" json:"name"`
	Email     string `gorm:"not null" json:"email"`
	Phone     string `gorm:"size:15;index" json:"phone"`
	Role      string `gorm:"default:'student'" json:"role"` // student, instructor, admin
	AvatarURL string `gorm:"default:''" json:"avatar_url"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	// Gamification wallet
	Coins  int `gorm:"default:0" json:"coins"`
	Points int `gorm:"default:0" json:"points"`
}

// IsAdmin reports whether the user may access admin-gated routes.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleInstructor
}
