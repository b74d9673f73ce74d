package service

import (
	"context"

	"zfast-backend/internal/database/models"
	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

const (
	newsDefaultLimit = 50
	newsMaxLimit     = 500
	defaultWebsite   = "#"
)

// TeamMemberRequest represents the body of a team member create or update
type TeamMemberRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Role         string `json:"role" validate:"required,max=200"`
	Department   string `json:"department" validate:"omitempty,oneof=Technical Operations Management Marketing"`
	Bio          string `json:"bio"`
	Image        string `json:"image" validate:"max=500"`
	LinkedIn     string `json:"linkedin" validate:"max=500"`
	DisplayOrder int    `json:"display_order"`
}

// SponsorRequest represents the body of a sponsor create or update
type SponsorRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Logo         string `json:"logo" validate:"max=500"`
	Website      string `json:"website" validate:"max=500"`
	Tier         string `json:"tier" validate:"omitempty,oneof=gold silver bronze"`
	DisplayOrder int    `json:"display_order"`
}

// SeasonRequest represents the body of a season create or update
type SeasonRequest struct {
	Year         int    `json:"year" validate:"required"`
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description"`
	Image        string `json:"image" validate:"max=500"`
	Achievements string `json:"achievements"`
	DisplayOrder int    `json:"display_order"`
}

// NewsRequest represents the body of a news create or update
type NewsRequest struct {
	Title    string `json:"title" validate:"required,max=300"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Image    string `json:"image" validate:"max=500"`
	Category string `json:"category" validate:"omitempty,oneof=general achievement technical team"`
}

// CarSpecRequest represents the body of a car spec create or update
type CarSpecRequest struct {
	Category     string `json:"category" validate:"required,max=100"`
	Label        string `json:"label" validate:"required,max=200"`
	Value        string `json:"value" validate:"required,max=100"`
	Unit         string `json:"unit" validate:"max=50"`
	Icon         string `json:"icon" validate:"max=50"`
	DisplayOrder int    `json:"display_order"`
}

// AboutSlideRequest represents the body of an about slide create or update
type AboutSlideRequest struct {
	Image        string `json:"image" validate:"required,max=500"`
	Caption      string `json:"caption" validate:"max=500"`
	DisplayOrder int    `json:"display_order"`
}

type (
	TeamMemberServiceInterface = ResourceServiceInterface[TeamMemberRequest, models.TeamMember]
	SponsorServiceInterface    = ResourceServiceInterface[SponsorRequest, models.Sponsor]
	SeasonServiceInterface     = ResourceServiceInterface[SeasonRequest, models.Season]
	NewsServiceInterface       = ResourceServiceInterface[NewsRequest, models.NewsArticle]
	CarServiceInterface        = ResourceServiceInterface[CarRequest, CarResponse]
	CarSpecServiceInterface    = ResourceServiceInterface[CarSpecRequest, models.CarSpec]
	AboutSlideServiceInterface = ResourceServiceInterface[AboutSlideRequest, models.AboutSlide]
)

func identity[M any](_ context.Context, m *M) M {
	return *m
}

// NewTeamMemberService creates the team member service. Department defaults to Technical.
func NewTeamMemberService(repo repository.ResourceRepositoryInterface[models.TeamMember], v *validator.Validate) *ResourceService[TeamMemberRequest, models.TeamMember, models.TeamMember] {
	return NewResourceService(repo, v, ResourceConfig[TeamMemberRequest, models.TeamMember, models.TeamMember]{
		Name:     "team member",
		NotFound: apperrors.ErrTeamMemberNotFound,
		ToModel: func(req *TeamMemberRequest) (*models.TeamMember, error) {
			department := models.Department(req.Department)
			if department == "" {
				department = models.DepartmentTechnical
			}
			return &models.TeamMember{
				Name:         req.Name,
				Role:         req.Role,
				Department:   department,
				Bio:          req.Bio,
				Image:        req.Image,
				LinkedIn:     req.LinkedIn,
				DisplayOrder: req.DisplayOrder,
			}, nil
		},
		ToResponse: identity[models.TeamMember],
	})
}

// NewSponsorService creates the sponsor service. Tier defaults to silver and website to "#".
func NewSponsorService(repo repository.ResourceRepositoryInterface[models.Sponsor], v *validator.Validate) *ResourceService[SponsorRequest, models.Sponsor, models.Sponsor] {
	return NewResourceService(repo, v, ResourceConfig[SponsorRequest, models.Sponsor, models.Sponsor]{
		Name:     "sponsor",
		NotFound: apperrors.ErrSponsorNotFound,
		ToModel: func(req *SponsorRequest) (*models.Sponsor, error) {
			tier := models.SponsorTier(req.Tier)
			if tier == "" {
				tier = models.SponsorTierSilver
			}
			website := req.Website
			if website == "" {
				website = defaultWebsite
			}
			return &models.Sponsor{
				Name:         req.Name,
				Logo:         req.Logo,
				Website:      website,
				Tier:         tier,
				DisplayOrder: req.DisplayOrder,
			}, nil
		},
		ToResponse: identity[models.Sponsor],
	})
}

// NewSeasonService creates the season service
func NewSeasonService(repo repository.ResourceRepositoryInterface[models.Season], v *validator.Validate) *ResourceService[SeasonRequest, models.Season, models.Season] {
	return NewResourceService(repo, v, ResourceConfig[SeasonRequest, models.Season, models.Season]{
		Name:     "season",
		NotFound: apperrors.ErrSeasonNotFound,
		ToModel: func(req *SeasonRequest) (*models.Season, error) {
			return &models.Season{
				Year:         req.Year,
				Title:        req.Title,
				Description:  req.Description,
				Image:        req.Image,
				Achievements: req.Achievements,
				DisplayOrder: req.DisplayOrder,
			}, nil
		},
		ToResponse: identity[models.Season],
	})
}

// NewNewsService creates the news service. Lists default to 50 articles, at most 500.
func NewNewsService(repo repository.ResourceRepositoryInterface[models.NewsArticle], v *validator.Validate) *ResourceService[NewsRequest, models.NewsArticle, models.NewsArticle] {
	return NewResourceService(repo, v, ResourceConfig[NewsRequest, models.NewsArticle, models.NewsArticle]{
		Name:         "news article",
		NotFound:     apperrors.ErrNewsNotFound,
		DefaultLimit: newsDefaultLimit,
		MaxLimit:     newsMaxLimit,
		ToModel: func(req *NewsRequest) (*models.NewsArticle, error) {
			category := models.NewsCategory(req.Category)
			if category == "" {
				category = models.NewsCategoryGeneral
			}
			return &models.NewsArticle{
				Title:    req.Title,
				Summary:  req.Summary,
				Content:  req.Content,
				Image:    req.Image,
				Category: category,
			}, nil
		},
		ToResponse: identity[models.NewsArticle],
	})
}

// NewCarSpecService creates the flat car spec service
func NewCarSpecService(repo repository.ResourceRepositoryInterface[models.CarSpec], v *validator.Validate) *ResourceService[CarSpecRequest, models.CarSpec, models.CarSpec] {
	return NewResourceService(repo, v, ResourceConfig[CarSpecRequest, models.CarSpec, models.CarSpec]{
		Name:     "car spec",
		NotFound: apperrors.ErrCarSpecNotFound,
		ToModel: func(req *CarSpecRequest) (*models.CarSpec, error) {
			return &models.CarSpec{
				Category:     req.Category,
				Label:        req.Label,
				Value:        req.Value,
				Unit:         req.Unit,
				Icon:         req.Icon,
				DisplayOrder: req.DisplayOrder,
			}, nil
		},
		ToResponse: identity[models.CarSpec],
	})
}

// NewAboutSlideService creates the about slide service
func NewAboutSlideService(repo repository.ResourceRepositoryInterface[models.AboutSlide], v *validator.Validate) *ResourceService[AboutSlideRequest, models.AboutSlide, models.AboutSlide] {
	return NewResourceService(repo, v, ResourceConfig[AboutSlideRequest, models.AboutSlide, models.AboutSlide]{
		Name:     "about slide",
		NotFound: apperrors.ErrAboutSlideNotFound,
		ToModel: func(req *AboutSlideRequest) (*models.AboutSlide, error) {
			return &models.AboutSlide{
				Image:        req.Image,
				Caption:      req.Caption,
				DisplayOrder: req.DisplayOrder,
			}, nil
		},
		ToResponse: identity[models.AboutSlide],
	})
}
