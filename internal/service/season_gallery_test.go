package service_test

import (
	"context"
	"testing"

	"zfast-backend/internal/database/models"
	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/mocks"
	"zfast-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SeasonGalleryServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockSeasonGalleryRepositoryInterface
	mockSeasons *mocks.MockResourceRepositoryInterface[models.Season]
	svc         *service.SeasonGalleryService
	ctx         context.Context
}

func (suite *SeasonGalleryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSeasonGalleryRepositoryInterface(suite.ctrl)
	suite.mockSeasons = mocks.NewMockResourceRepositoryInterface[models.Season](suite.ctrl)
	suite.svc = service.NewSeasonGalleryService(suite.mockRepo, suite.mockSeasons, service.NewValidator())
	suite.ctx = context.Background()
}

func (suite *SeasonGalleryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SeasonGalleryServiceTestSuite) TestList_UnknownSeason() {
	suite.mockSeasons.EXPECT().GetByID(gomock.Any(), uint(2)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.List(suite.ctx, 2)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSeasonNotFound)
}

func (suite *SeasonGalleryServiceTestSuite) TestList_Success() {
	suite.mockSeasons.EXPECT().GetByID(gomock.Any(), uint(2)).Return(&models.Season{Year: 2024}, nil)
	suite.mockRepo.EXPECT().ListBySeason(gomock.Any(), uint(2)).Return([]models.SeasonGalleryImage{{Image: "a.jpg"}}, nil)

	images, err := suite.svc.List(suite.ctx, 2)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), images, 1)
}

func (suite *SeasonGalleryServiceTestSuite) TestCreate_ImageRequired() {
	_, err := suite.svc.Create(suite.ctx, 2, &service.GalleryImageRequest{Caption: "c"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrImageRequired)
}

func (suite *SeasonGalleryServiceTestSuite) TestCreate_UnknownSeason() {
	suite.mockSeasons.EXPECT().GetByID(gomock.Any(), uint(2)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Create(suite.ctx, 2, &service.GalleryImageRequest{Image: "a.jpg"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrSeasonNotFound)
}

func (suite *SeasonGalleryServiceTestSuite) TestCreate_Success() {
	suite.mockSeasons.EXPECT().GetByID(gomock.Any(), uint(2)).Return(&models.Season{}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, img *models.SeasonGalleryImage) error {
		assert.Equal(suite.T(), uint(2), img.SeasonID)
		assert.Equal(suite.T(), "a.jpg", img.Image)
		img.ID = 11
		return nil
	})

	id, err := suite.svc.Create(suite.ctx, 2, &service.GalleryImageRequest{Image: "a.jpg"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(11), id)
}

func (suite *SeasonGalleryServiceTestSuite) TestUpdate_NotFound() {
	suite.mockRepo.EXPECT().Update(gomock.Any(), uint(2), uint(11), gomock.Any()).Return(gorm.ErrRecordNotFound)

	err := suite.svc.Update(suite.ctx, 2, 11, &service.GalleryImageRequest{Image: "b.jpg"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrGalleryImageNotFound)
}

func (suite *SeasonGalleryServiceTestSuite) TestDelete() {
	suite.mockRepo.EXPECT().Delete(gomock.Any(), uint(2), uint(11)).Return(nil)

	assert.NoError(suite.T(), suite.svc.Delete(suite.ctx, 2, 11))
}

func TestSeasonGalleryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeasonGalleryServiceTestSuite))
}
