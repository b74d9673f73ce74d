package models

// Season is one competition year. Its gallery rows are removed with it.
type Season struct {
	BaseModel
	Year         int                  `json:"year" gorm:"not null"`
	Title        string               `json:"title" gorm:"size:200;not null"`
	Description  string               `json:"description" gorm:"type:text"`
	Image        string               `json:"image" gorm:"size:500"`
	Achievements string               `json:"achievements" gorm:"type:text"`
	DisplayOrder int                  `json:"display_order" gorm:"not null;default:0"`
	Gallery      []SeasonGalleryImage `json:"-" gorm:"foreignKey:SeasonID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Season
func (Season) TableName() string {
	return "seasons"
}

// SeasonGalleryImage is a photo shown under a season
type SeasonGalleryImage struct {
	BaseModel
	SeasonID     uint   `json:"season_id" gorm:"not null;index"`
	Image        string `json:"image" gorm:"size:500;not null"`
	Caption      string `json:"caption" gorm:"size:500"`
	DisplayOrder int    `json:"display_order" gorm:"not null;default:0"`
}

// TableName returns the table name for SeasonGalleryImage
func (SeasonGalleryImage) TableName() string {
	return "season_gallery"
}
