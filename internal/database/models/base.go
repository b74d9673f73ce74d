package models

import (
	"time"
)

// BaseModel provides the integer primary key and creation timestamp shared by all content tables
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the primary key
func (b BaseModel) GetID() uint {
	return b.ID
}
