package models

// AboutSlide is one image of the about section carousel
type AboutSlide struct {
	BaseModel
	Image        string `json:"image" gorm:"size:500;not null"`
	Caption      string `json:"caption" gorm:"size:500"`
	DisplayOrder int    `json:"display_order" gorm:"not null;default:0"`
}

// TableName returns the table name for AboutSlide
func (AboutSlide) TableName() string {
	return "about_slides"
}
