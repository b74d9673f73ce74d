package models

type TeamMember struct {
	BaseModel
	Name         string     `json:"name" gorm:"size:200;not null"`
	Role         string     `json:"role" gorm:"size:200;not null"`
	Department   Department `json:"department" gorm:"size:50;not null;default:Technical"`
	Bio          string     `json:"bio" gorm:"type:text"`
	Image        string     `json:"image" gorm:"size:500"`
	LinkedIn     string     `json:"linkedin" gorm:"column:linkedin;size:500"`
	DisplayOrder int        `json:"display_order" gorm:"not null;default:0"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
