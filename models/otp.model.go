package models

// OTP stores the code last issued for a phone number, one row per phone.
// The mocked flow issues a fixed code with no expiry or attempt limiting.
type OTP struct {
	Model
	Phone string `gorm:"size:15;uniqueIndex;not null" json:"phone"`
	Code  string `gorm:"size:6;not null" json:"code"`
}
