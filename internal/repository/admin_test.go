package repository

import (
	"context"
	"errors"
	"testing"

	"zfast-backend/internal/database/models"
	"zfast-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AdminRepositoryTestSuite tests the AdminRepository
type AdminRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	repo  *AdminRepository
	ctx   context.Context
	admin *models.Admin
}

// SetupTest runs before each test with one admin row
func (suite *AdminRepositoryTestSuite) SetupTest() {
	suite.db = testutils.SetupTestDB(suite.T())
	suite.repo = NewAdminRepository(suite.db)
	suite.ctx = context.Background()

	suite.admin = &models.Admin{Username: "admin", PasswordHash: "hash-1"}
	suite.Require().NoError(suite.db.Create(suite.admin).Error)
}

// TestGetByUsername tests lookup by username
func (suite *AdminRepositoryTestSuite) TestGetByUsername() {
	found, err := suite.repo.GetByUsername(suite.ctx, "admin")
	suite.Require().NoError(err)
	suite.Equal(suite.admin.ID, found.ID)
	suite.Equal("hash-1", found.PasswordHash)

	_, err = suite.repo.GetByUsername(suite.ctx, "nobody")
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestUsernameIsUnique tests the unique index on username
func (suite *AdminRepositoryTestSuite) TestUsernameIsUnique() {
	err := suite.db.Create(&models.Admin{Username: "admin", PasswordHash: "x"}).Error
	suite.Error(err)
}

// TestUpdatePasswordBumpsVersion tests that each password change increments the token version
func (suite *AdminRepositoryTestSuite) TestUpdatePasswordBumpsVersion() {
	updated, err := suite.repo.UpdatePassword(suite.ctx, suite.admin.ID, "hash-2")
	suite.Require().NoError(err)
	suite.Equal("hash-2", updated.PasswordHash)
	suite.Equal(1, updated.TokenVersion)

	updated, err = suite.repo.UpdatePassword(suite.ctx, suite.admin.ID, "hash-3")
	suite.Require().NoError(err)
	suite.Equal(2, updated.TokenVersion)

	found, err := suite.repo.GetByID(suite.ctx, suite.admin.ID)
	suite.Require().NoError(err)
	suite.Equal("hash-3", found.PasswordHash)
}

// TestUpdatePasswordNotFound tests updating a missing admin
func (suite *AdminRepositoryTestSuite) TestUpdatePasswordNotFound() {
	_, err := suite.repo.UpdatePassword(suite.ctx, 99, "hash")
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestAdminRepositoryTestSuite runs the test suite
func TestAdminRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AdminRepositoryTestSuite))
}
