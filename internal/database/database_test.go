package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"zfast-backend/internal/database"
	"zfast-backend/internal/database/models"
	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestInitialize(t *testing.T) {
	t.Run("creates file store and enforces foreign keys", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "nested", "zfast.db")
		db, err := database.Initialize(database.DriverSQLite, dsn, &database.Options{LogLevel: logger.Silent})
		require.NoError(t, err)
		defer database.Close(db)

		assert.FileExists(t, dsn)

		var fk int
		require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
		assert.Equal(t, 1, fk)

		for _, m := range database.Models() {
			assert.True(t, db.Migrator().HasTable(m))
		}
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		_, err := database.Initialize("mysql", "whatever", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})

	t.Run("gallery rows are removed with their season", func(t *testing.T) {
		db := testutils.SetupTestDB(t)

		season := models.Season{Year: 2024, Title: "Season"}
		require.NoError(t, db.Create(&season).Error)
		require.NoError(t, db.Create(&models.SeasonGalleryImage{SeasonID: season.ID, Image: "/uploads/a.jpg"}).Error)

		require.NoError(t, db.Delete(&models.Season{}, season.ID).Error)
		assert.Zero(t, countRows(t, db, &models.SeasonGalleryImage{}))
	})
}

func TestLoadSeedData(t *testing.T) {
	t.Run("embedded default", func(t *testing.T) {
		data, err := database.LoadSeedData(nil)
		require.NoError(t, err)

		assert.Equal(t, "admin", data.Admin.Username)
		assert.Equal(t, "zfast2024", data.Admin.Password)
		assert.Len(t, data.TeamInfo, 21)
		assert.Len(t, data.CarSpecs, 8)
		assert.Len(t, data.Cars, 2)
		assert.Len(t, data.TeamMembers, 4)
		assert.Len(t, data.Sponsors, 3)
		assert.Len(t, data.Seasons, 2)
		assert.Len(t, data.News, 2)
	})

	t.Run("custom file", func(t *testing.T) {
		data, err := database.LoadSeedData([]byte("admin:\n  username: boss\n  password: secret123\nsponsors:\n  - name: Acme\n    tier: gold\n"))
		require.NoError(t, err)
		assert.Equal(t, "boss", data.Admin.Username)
		require.Len(t, data.Sponsors, 1)
		assert.Equal(t, "gold", data.Sponsors[0].Tier)
		assert.Empty(t, data.News)
	})

	t.Run("blank enums take defaults", func(t *testing.T) {
		data, err := database.LoadSeedData([]byte("team_members:\n  - name: A\n    role: B\nsponsors:\n  - name: Acme\nnews:\n  - title: Hello\n"))
		require.NoError(t, err)
		assert.Equal(t, string(models.DepartmentTechnical), data.TeamMembers[0].Department)
		assert.Equal(t, string(models.SponsorTierSilver), data.Sponsors[0].Tier)
		assert.Equal(t, string(models.NewsCategoryGeneral), data.News[0].Category)
	})

	t.Run("unknown enum values are rejected", func(t *testing.T) {
		cases := map[string]string{
			"department": "team_members:\n  - name: A\n    role: B\n    department: Catering\n",
			"tier":       "sponsors:\n  - name: Acme\n    tier: platinum\n",
			"category":   "news:\n  - title: Hello\n    category: gossip\n",
		}
		for field, raw := range cases {
			_, err := database.LoadSeedData([]byte(raw))
			require.Error(t, err, field)
			assert.Contains(t, err.Error(), "invalid "+field)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := database.LoadSeedData([]byte("admin: [unterminated"))
		assert.Error(t, err)
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t)
	opts := database.SeedOptions{BcryptCost: bcrypt.MinCost}

	require.NoError(t, database.Seed(ctx, db, opts))

	assertCounts := func() {
		assert.EqualValues(t, 1, countRows(t, db, &models.Admin{}))
		assert.EqualValues(t, 21, countRows(t, db, &models.TeamInfo{}))
		assert.EqualValues(t, 8, countRows(t, db, &models.CarSpec{}))
		assert.EqualValues(t, 2, countRows(t, db, &models.Car{}))
		assert.EqualValues(t, 4, countRows(t, db, &models.TeamMember{}))
		assert.EqualValues(t, 3, countRows(t, db, &models.Sponsor{}))
		assert.EqualValues(t, 2, countRows(t, db, &models.Season{}))
		assert.EqualValues(t, 2, countRows(t, db, &models.NewsArticle{}))
	}
	assertCounts()

	var admin models.Admin
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("zfast2024")))

	t.Run("second run changes nothing", func(t *testing.T) {
		require.NoError(t, db.Model(&models.TeamInfo{}).Where("key = ?", "hero_title").Update("value", "Edited").Error)

		require.NoError(t, database.Seed(ctx, db, opts))
		assertCounts()

		var row models.TeamInfo
		require.NoError(t, db.Where("key = ?", "hero_title").First(&row).Error)
		assert.Equal(t, "Edited", row.Value)

		var again models.Admin
		require.NoError(t, db.Where("username = ?", "admin").First(&again).Error)
		assert.Equal(t, admin.PasswordHash, again.PasswordHash)
	})

	t.Run("empty table is refilled", func(t *testing.T) {
		require.NoError(t, db.Where("1 = 1").Delete(&models.Sponsor{}).Error)
		require.NoError(t, database.Seed(ctx, db, opts))
		assert.EqualValues(t, 3, countRows(t, db, &models.Sponsor{}))
	})
}

func TestSetAdminPassword(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t)

	t.Run("creates the first admin on an empty store", func(t *testing.T) {
		require.NoError(t, database.SetAdminPassword(ctx, db, "owner", "first-password", bcrypt.MinCost))

		var admin models.Admin
		require.NoError(t, db.Where("username = ?", "owner").First(&admin).Error)
		assert.Zero(t, admin.TokenVersion)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("first-password")))
	})

	t.Run("resets existing admin and revokes tokens", func(t *testing.T) {
		require.NoError(t, database.SetAdminPassword(ctx, db, "owner", "second-password", bcrypt.MinCost))

		var admin models.Admin
		require.NoError(t, db.Where("username = ?", "owner").First(&admin).Error)
		assert.Equal(t, 1, admin.TokenVersion)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("second-password")))
		assert.EqualValues(t, 1, countRows(t, db, &models.Admin{}))
	})

	t.Run("unknown username does not add a second admin", func(t *testing.T) {
		err := database.SetAdminPassword(ctx, db, "bob", "longpassword", bcrypt.MinCost)
		assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)
		assert.EqualValues(t, 1, countRows(t, db, &models.Admin{}))
	})
}
