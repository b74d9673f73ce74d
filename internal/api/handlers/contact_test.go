package handlers_test

import (
	"net/http"
	"testing"

	"zfast-backend/internal/api/handlers"
	"zfast-backend/internal/database/models"
	apperrors "zfast-backend/internal/errors"
	"zfast-backend/internal/mocks"
	"zfast-backend/internal/service"
	"zfast-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ContactHandlerTestSuite defines the test suite for ContactHandler
type ContactHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockContactServiceInterface
	handler     *handlers.ContactHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ContactHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockContactServiceInterface(suite.ctrl)
	suite.handler = handlers.NewContactHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	contact := suite.httpSuite.Router.Group("/api/contact")
	{
		contact.POST("", suite.handler.Submit)
		contact.GET("", suite.handler.List)
		contact.PUT("/:id/read", suite.handler.MarkRead)
		contact.DELETE("/:id", suite.handler.Delete)
	}
}

// TearDownTest cleans up after each test
func (suite *ContactHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContactHandlerTestSuite) TestSubmit() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Submit(gomock.Any(), &service.ContactRequest{Name: "A", Email: "a@b.com", Message: "hi"}).
			Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/contact", map[string]interface{}{
			"name":    "A",
			"email":   "a@b.com",
			"message": "hi",
		})
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
	})

	suite.T().Run("Missing fields", func(t *testing.T) {
		suite.mockService.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(apperrors.ErrContactFieldsRequired)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/contact", map[string]interface{}{"name": "A"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Name, email, and message are required")
	})
}

func (suite *ContactHandlerTestSuite) TestList() {
	suite.mockService.EXPECT().List(gomock.Any()).Return([]models.ContactMessage{
		{BaseModel: models.BaseModel{ID: 2}, Name: "B", Email: "b@c.com", Message: "later"},
		{BaseModel: models.BaseModel{ID: 1}, Name: "A", Email: "a@b.com", Message: "first", Read: true},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/contact", nil)

	var response []models.ContactMessage
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
	suite.Equal(uint(2), response[0].ID)
	suite.True(response[1].Read)
}

func (suite *ContactHandlerTestSuite) TestMarkRead() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().MarkRead(gomock.Any(), uint(1)).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/contact/1/read", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Unknown id", func(t *testing.T) {
		suite.mockService.EXPECT().MarkRead(gomock.Any(), uint(9)).Return(apperrors.ErrContactMessageNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/contact/9/read", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Not found")
	})
}

func (suite *ContactHandlerTestSuite) TestDelete() {
	suite.mockService.EXPECT().Delete(gomock.Any(), uint(4)).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/contact/4", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"success":true}`, recorder.Body.String())
}

// TestContactHandlerTestSuite runs the test suite
func TestContactHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}
