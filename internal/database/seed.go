package database

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"zfast-backend/internal/database/models"
	apperrors "zfast-backend/internal/errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed seed_data.yaml
var defaultSeedYAML []byte

// Simple structures that directly match the seed file
type AdminData struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type TeamInfoData struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type CarSpecData struct {
	Category     string `yaml:"category"`
	Label        string `yaml:"label"`
	Value        string `yaml:"value"`
	Unit         string `yaml:"unit"`
	Icon         string `yaml:"icon"`
	DisplayOrder int    `yaml:"display_order"`
}

type CarData struct {
	Name         string               `yaml:"name"`
	Year         *int                 `yaml:"year"`
	Description  string               `yaml:"description"`
	Image        string               `yaml:"image"`
	Specs        []models.CarSpecItem `yaml:"specs"`
	DisplayOrder int                  `yaml:"display_order"`
}

type TeamMemberData struct {
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	Department   string `yaml:"department"`
	Bio          string `yaml:"bio"`
	Image        string `yaml:"image"`
	LinkedIn     string `yaml:"linkedin"`
	DisplayOrder int    `yaml:"display_order"`
}

type SponsorData struct {
	Name         string `yaml:"name"`
	Logo         string `yaml:"logo"`
	Website      string `yaml:"website"`
	Tier         string `yaml:"tier"`
	DisplayOrder int    `yaml:"display_order"`
}

type SeasonData struct {
	Year         int    `yaml:"year"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Image        string `yaml:"image"`
	Achievements string `yaml:"achievements"`
	DisplayOrder int    `yaml:"display_order"`
}

type NewsData struct {
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary"`
	Content  string `yaml:"content"`
	Image    string `yaml:"image"`
	Category string `yaml:"category"`
}

// SeedData is the whole seed file
type SeedData struct {
	Admin       AdminData        `yaml:"admin"`
	TeamInfo    []TeamInfoData   `yaml:"team_info"`
	CarSpecs    []CarSpecData    `yaml:"car_specs"`
	Cars        []CarData        `yaml:"cars"`
	TeamMembers []TeamMemberData `yaml:"team_members"`
	Sponsors    []SponsorData    `yaml:"sponsors"`
	Seasons     []SeasonData     `yaml:"seasons"`
	News        []NewsData       `yaml:"news"`
}

type SeedOptions struct {
	BcryptCost int
	// Data replaces the embedded seed file when set
	Data *SeedData
}

// LoadSeedData parses seed YAML; nil input selects the embedded default file
func LoadSeedData(raw []byte) (*SeedData, error) {
	if raw == nil {
		raw = defaultSeedYAML
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	if err := data.normalize(); err != nil {
		return nil, err
	}
	return &data, nil
}

// normalize fills blank enum values with their defaults and rejects unknown ones
func (d *SeedData) normalize() error {
	for i := range d.TeamMembers {
		m := &d.TeamMembers[i]
		if m.Department == "" {
			m.Department = string(models.DepartmentTechnical)
		}
		if !models.Department(m.Department).IsValid() {
			return fmt.Errorf("team member %q: invalid department %q", m.Name, m.Department)
		}
	}
	for i := range d.Sponsors {
		s := &d.Sponsors[i]
		if s.Tier == "" {
			s.Tier = string(models.SponsorTierSilver)
		}
		if !models.SponsorTier(s.Tier).IsValid() {
			return fmt.Errorf("sponsor %q: invalid tier %q", s.Name, s.Tier)
		}
	}
	for i := range d.News {
		n := &d.News[i]
		if n.Category == "" {
			n.Category = string(models.NewsCategoryGeneral)
		}
		if !models.NewsCategory(n.Category).IsValid() {
			return fmt.Errorf("news %q: invalid category %q", n.Title, n.Category)
		}
	}
	return nil
}

// Seed inserts the admin account, the site settings and demo content.
// Existing settings keys are left untouched and content tables are only filled while empty,
// so running it again is harmless.
func Seed(ctx context.Context, db *gorm.DB, opts SeedOptions) error {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	data := opts.Data
	if data == nil {
		var err error
		if data, err = LoadSeedData(nil); err != nil {
			return err
		}
	}

	// Hash outside the transaction; bcrypt is slow on purpose.
	var adminHash []byte
	if data.Admin.Username != "" {
		var err error
		adminHash, err = bcrypt.GenerateFromPassword([]byte(data.Admin.Password), opts.BcryptCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if adminHash != nil {
			admin := models.Admin{Username: data.Admin.Username, PasswordHash: string(adminHash)}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "username"}},
				DoNothing: true,
			}).Create(&admin).Error; err != nil {
				return fmt.Errorf("seed admin: %w", err)
			}
		}

		for _, item := range data.TeamInfo {
			row := models.TeamInfo{Key: item.Key, Value: item.Value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoNothing: true,
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("seed team info %q: %w", item.Key, err)
			}
		}

		specs := make([]models.CarSpec, len(data.CarSpecs))
		for i, s := range data.CarSpecs {
			specs[i] = models.CarSpec{Category: s.Category, Label: s.Label, Value: s.Value, Unit: s.Unit, Icon: s.Icon, DisplayOrder: s.DisplayOrder}
		}
		if err := seedIfEmpty(tx, "car_specs", specs); err != nil {
			return err
		}

		cars := make([]models.Car, len(data.Cars))
		for i, c := range data.Cars {
			items := c.Specs
			if items == nil {
				items = []models.CarSpecItem{}
			}
			encoded, err := json.Marshal(items)
			if err != nil {
				return fmt.Errorf("encode specs for %s: %w", c.Name, err)
			}
			cars[i] = models.Car{Name: c.Name, Year: c.Year, Description: c.Description, Image: c.Image, Specs: datatypes.JSON(encoded), DisplayOrder: c.DisplayOrder}
		}
		if err := seedIfEmpty(tx, "cars", cars); err != nil {
			return err
		}

		members := make([]models.TeamMember, len(data.TeamMembers))
		for i, m := range data.TeamMembers {
			members[i] = models.TeamMember{Name: m.Name, Role: m.Role, Department: models.Department(m.Department), Bio: m.Bio, Image: m.Image, LinkedIn: m.LinkedIn, DisplayOrder: m.DisplayOrder}
		}
		if err := seedIfEmpty(tx, "team_members", members); err != nil {
			return err
		}

		sponsors := make([]models.Sponsor, len(data.Sponsors))
		for i, s := range data.Sponsors {
			sponsors[i] = models.Sponsor{Name: s.Name, Logo: s.Logo, Website: s.Website, Tier: models.SponsorTier(s.Tier), DisplayOrder: s.DisplayOrder}
		}
		if err := seedIfEmpty(tx, "sponsors", sponsors); err != nil {
			return err
		}

		seasons := make([]models.Season, len(data.Seasons))
		for i, s := range data.Seasons {
			seasons[i] = models.Season{Year: s.Year, Title: s.Title, Description: s.Description, Image: s.Image, Achievements: s.Achievements, DisplayOrder: s.DisplayOrder}
		}
		if err := seedIfEmpty(tx, "seasons", seasons); err != nil {
			return err
		}

		news := make([]models.NewsArticle, len(data.News))
		for i, n := range data.News {
			news[i] = models.NewsArticle{Title: n.Title, Summary: n.Summary, Content: n.Content, Image: n.Image, Category: models.NewsCategory(n.Category)}
		}
		return seedIfEmpty(tx, "news", news)
	})
}

func seedIfEmpty[T any](tx *gorm.DB, table string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(new(T)).Count(&count).Error; err != nil {
		return fmt.Errorf("count %s: %w", table, err)
	}
	if count > 0 {
		logrus.WithField("table", table).Debug("Table already has rows, skipping seed")
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed %s: %w", table, err)
	}
	logrus.WithFields(logrus.Fields{"table": table, "rows": len(rows)}).Info("Seeded table")
	return nil
}

// SetAdminPassword resets the password of an existing admin and revokes its outstanding tokens.
// On a store with no admin yet it creates the account; a second account is never created.
func SetAdminPassword(ctx context.Context, db *gorm.DB, username, password string, cost int) error {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var admin models.Admin
		err := tx.Where("username = ?", username).First(&admin).Error
		switch {
		case err == nil:
			return tx.Model(&admin).Updates(map[string]interface{}{
				"password":      string(hash),
				"token_version": gorm.Expr("token_version + 1"),
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			var count int64
			if err := tx.Model(&models.Admin{}).Count(&count).Error; err != nil {
				return fmt.Errorf("count admins: %w", err)
			}
			if count > 0 {
				return apperrors.ErrAdminNotFound
			}
			return tx.Create(&models.Admin{Username: username, PasswordHash: string(hash)}).Error
		default:
			return err
		}
	})
}
