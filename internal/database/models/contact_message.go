package models

// ContactMessage is a public contact form submission. Read only ever moves from false to true.
type ContactMessage struct {
	BaseModel
	Name    string `json:"name" gorm:"size:200;not null"`
	Email   string `json:"email" gorm:"size:320;not null"`
	Subject string `json:"subject" gorm:"size:300"`
	Message string `json:"message" gorm:"type:text;not null"`
	Read    bool   `json:"read" gorm:"column:read;not null;default:false;index"`
}

// TableName returns the table name for ContactMessage
func (ContactMessage) TableName() string {
	return "contact_messages"
}
