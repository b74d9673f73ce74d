package testutils

import (
	"encoding/json"
	"time"

	"zfast-backend/internal/database/models"

	"gorm.io/datatypes"
)

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create() *models.TeamMember {
	return &models.TeamMember{
		Name:       "Test Member",
		Role:       "Engineer",
		Department: models.DepartmentTechnical,
		Bio:        "Builds the battery pack",
		Image:      "/uploads/member.jpg",
		LinkedIn:   "https://linkedin.com/in/test",
	}
}

// WithOrder sets a custom name and display order
func (f *TeamMemberFactory) WithOrder(name string, order int) *models.TeamMember {
	m := f.Create()
	m.Name = name
	m.DisplayOrder = order
	return m
}

// SponsorFactory provides methods to create test Sponsor data
type SponsorFactory struct{}

// NewSponsorFactory creates a new SponsorFactory
func NewSponsorFactory() *SponsorFactory {
	return &SponsorFactory{}
}

// Create creates a test Sponsor with default values
func (f *SponsorFactory) Create() *models.Sponsor {
	return &models.Sponsor{
		Name:    "Acme",
		Logo:    "/uploads/acme.png",
		Website: "https://acme.example",
		Tier:    models.SponsorTierSilver,
	}
}

// WithOrder sets a custom name and display order
func (f *SponsorFactory) WithOrder(name string, order int) *models.Sponsor {
	s := f.Create()
	s.Name = name
	s.DisplayOrder = order
	return s
}

// SeasonFactory provides methods to create test Season data
type SeasonFactory struct{}

// NewSeasonFactory creates a new SeasonFactory
func NewSeasonFactory() *SeasonFactory {
	return &SeasonFactory{}
}

// Create creates a test Season with default values
func (f *SeasonFactory) Create() *models.Season {
	return &models.Season{
		Year:         2024,
		Title:        "First Season",
		Description:  "Our first car on track",
		Achievements: "Rookie award",
	}
}

// WithOrder sets a custom year and display order
func (f *SeasonFactory) WithOrder(year, order int) *models.Season {
	s := f.Create()
	s.Year = year
	s.DisplayOrder = order
	return s
}

// GalleryImage creates a gallery row for a season
func (f *SeasonFactory) GalleryImage(seasonID uint, image string, order int) *models.SeasonGalleryImage {
	return &models.SeasonGalleryImage{
		SeasonID:     seasonID,
		Image:        image,
		Caption:      "Caption for " + image,
		DisplayOrder: order,
	}
}

// NewsFactory provides methods to create test NewsArticle data
type NewsFactory struct{}

// NewNewsFactory creates a new NewsFactory
func NewNewsFactory() *NewsFactory {
	return &NewsFactory{}
}

// Create creates a test NewsArticle with default values
func (f *NewsFactory) Create() *models.NewsArticle {
	return &models.NewsArticle{
		Title:    "Car unveiled",
		Summary:  "EV-1 rolls out",
		Content:  "Full story",
		Category: models.NewsCategoryGeneral,
	}
}

// PublishedAt creates an article with a fixed publication time
func (f *NewsFactory) PublishedAt(title string, at time.Time) *models.NewsArticle {
	n := f.Create()
	n.Title = title
	n.PublishedAt = at
	return n
}

// CarFactory provides methods to create test Car data
type CarFactory struct{}

// NewCarFactory creates a new CarFactory
func NewCarFactory() *CarFactory {
	return &CarFactory{}
}

// Create creates a test Car with default values
func (f *CarFactory) Create() *models.Car {
	year := 2024
	return &models.Car{
		Name:        "EV-1",
		Year:        &year,
		Description: "First electric car",
		Specs:       f.Specs(models.CarSpecItem{Icon: "bolt", Label: "Power", Value: "80", Unit: "kW"}),
	}
}

// Specs encodes items the way the car column stores them
func (f *CarFactory) Specs(items ...models.CarSpecItem) datatypes.JSON {
	if items == nil {
		items = []models.CarSpecItem{}
	}
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}

// ContactMessageFactory provides methods to create test ContactMessage data
type ContactMessageFactory struct{}

// NewContactMessageFactory creates a new ContactMessageFactory
func NewContactMessageFactory() *ContactMessageFactory {
	return &ContactMessageFactory{}
}

// Create creates a test ContactMessage with default values
func (f *ContactMessageFactory) Create() *models.ContactMessage {
	return &models.ContactMessage{
		Name:    "A",
		Email:   "a@b.com",
		Subject: "Sponsoring",
		Message: "hi",
	}
}
