package models

import (
	"gorm.io/datatypes"
)

// CarSpecItem is one headline figure shown on a car card
type CarSpecItem struct {
	Icon  string `json:"icon" yaml:"icon"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Unit  string `json:"unit" yaml:"unit"`
}

// Car is a team vehicle. Specs holds a JSON encoded []CarSpecItem that the store never interprets.
type Car struct {
	BaseModel
	Name         string         `json:"name" gorm:"size:200;not null"`
	Year         *int           `json:"year"`
	Description  string         `json:"description" gorm:"type:text"`
	Image        string         `json:"image" gorm:"size:500"`
	Specs        datatypes.JSON `json:"specs" gorm:"not null;default:'[]'"`
	DisplayOrder int            `json:"display_order" gorm:"not null;default:0"`
}

// TableName returns the table name for Car
func (Car) TableName() string {
	return "cars"
}

// CarSpec is a row of the flat spec sheet, independent of Car.Specs
type CarSpec struct {
	BaseModel
	Category     string `json:"category" gorm:"size:100;not null"`
	Label        string `json:"label" gorm:"size:200;not null"`
	Value        string `json:"value" gorm:"size:100;not null"`
	Unit         string `json:"unit" gorm:"size:50"`
	Icon         string `json:"icon" gorm:"size:50"`
	DisplayOrder int    `json:"display_order" gorm:"not null;default:0"`
}

// TableName returns the table name for CarSpec
func (CarSpec) TableName() string {
	return "car_specs"
}
