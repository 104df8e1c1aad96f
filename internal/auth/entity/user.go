package entity

import "time"

// User is an account authenticated by email and password, with optional
// TOTP two-factor authentication.
type User struct {
	ID           string `json:"id" gorm:"primaryKey;size:32"`
	Email        string `json:"email" gorm:"size:200;uniqueIndex;not null"`
	Name         string `json:"name" gorm:"size:200"`
	PasswordHash string `json:"-" gorm:"size:200;not null"`
	TOTPSecret   string `json:"-" gorm:"size:64"`
	TwoFAEnabled bool   `json:"is_2fa_enabled" gorm:"default:false"`
	Status       string `json:"status" gorm:"size:20;default:active"` // active/disabled

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func (User) TableName() string {
	return "users"
}
