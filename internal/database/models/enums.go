package models

// Department groups team members on the public team page
type Department string

const (
	DepartmentTechnical  Department = "Technical"
	DepartmentOperations Department = "Operations"
	DepartmentManagement Department = "Management"
	DepartmentMarketing  Department = "Marketing"
)

// SponsorTier controls sponsor placement on the partners section
type SponsorTier string

const (
	SponsorTierGold   SponsorTier = "gold"
	SponsorTierSilver SponsorTier = "silver"
	SponsorTierBronze SponsorTier = "bronze"
)

// NewsCategory labels a news article
type NewsCategory string

const (
	NewsCategoryGeneral     NewsCategory = "general"
	NewsCategoryAchievement NewsCategory = "achievement"
	NewsCategoryTechnical   NewsCategory = "technical"
	NewsCategoryTeam        NewsCategory = "team"
)

// IsValid checks if the Department is valid
func (d Department) IsValid() bool {
	switch d {
	case DepartmentTechnical, DepartmentOperations, DepartmentManagement, DepartmentMarketing:
		return true
	}
	return false
}

// IsValid checks if the SponsorTier is valid
func (t SponsorTier) IsValid() bool {
	switch t {
	case SponsorTierGold, SponsorTierSilver, SponsorTierBronze:
		return true
	}
	return false
}

// IsValid checks if the NewsCategory is valid
func (c NewsCategory) IsValid() bool {
	switch c {
	case NewsCategoryGeneral, NewsCategoryAchievement, NewsCategoryTechnical, NewsCategoryTeam:
		return true
	}
	return false
}
