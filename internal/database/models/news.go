package models

import (
	"time"

	"gorm.io/gorm"
)

type NewsArticle struct {
	BaseModel
	Title       string       `json:"title" gorm:"size:300;not null"`
	Summary     string       `json:"summary" gorm:"type:text"`
	Content     string       `json:"content" gorm:"type:text"`
	Image       string       `json:"image" gorm:"size:500"`
	Category    NewsCategory `json:"category" gorm:"size:20;not null;default:general"`
	PublishedAt time.Time    `json:"published_at" gorm:"not null;index"`
}

// TableName returns the table name for NewsArticle
func (NewsArticle) TableName() string {
	return "news"
}

// BeforeCreate stamps the publication time when the caller did not set one
func (n *NewsArticle) BeforeCreate(tx *gorm.DB) error {
	if n.PublishedAt.IsZero() {
		n.PublishedAt = time.Now().UTC()
	}
	return nil
}
