package models

import "time"

// TeamInfo is one entry of the site settings bag (page copy, hero stats, social links)
type TeamInfo struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Key       string    `json:"key" gorm:"column:key;size:100;not null;uniqueIndex"`
	Value     string    `json:"value" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for TeamInfo
func (TeamInfo) TableName() string {
	return "team_info"
}
