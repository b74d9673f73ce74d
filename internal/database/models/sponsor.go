package models

type Sponsor struct {
	BaseModel
	Name         string      `json:"name" gorm:"size:200;not null"`
	Logo         string      `json:"logo" gorm:"size:500"`
	Website      string      `json:"website" gorm:"size:500"`
	Tier         SponsorTier `json:"tier" gorm:"size:20;not null;default:silver"`
	DisplayOrder int         `json:"display_order" gorm:"not null;default:0"`
}

// TableName returns the table name for Sponsor
func (Sponsor) TableName() string {
	return "sponsors"
}
