package models

import "time"

// Admin is the single account allowed into the admin panel.
// TokenVersion is embedded in issued tokens; bumping it revokes them all.
type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password;not null"`
	TokenVersion int       `json:"-" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
