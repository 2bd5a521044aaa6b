package handlers_test

import (
	"net/http"
	"testing"

	"projects-manager-backend/internal/api/handlers"
	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/mocks"
	"projects-manager-backend/internal/service"
	"projects-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockNotificationService *mocks.MockNotificationServiceInterface
	api                     *testutils.HTTPTestSuite
	userID                  uuid.UUID
}

func (suite *NotificationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockNotificationService = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	handler := handlers.NewNotificationHandler(suite.mockNotificationService)
	suite.api = testutils.SetupHTTPTest()
	suite.api.Router.Use(authAs(suite.userID))
	suite.api.Router.GET("/notifications", handler.ListNotifications)
	suite.api.Router.PUT("/notifications/:id/read", handler.MarkRead)
}

func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationHandlerTestSuite) TestListNotifications_All() {
	suite.mockNotificationService.EXPECT().
		ListNotifications(suite.userID, false).
		Return([]service.NotificationResponse{
			{ID: uuid.New(), Kind: models.NotificationShareInvited, Message: "You were invited", Read: false},
			{ID: uuid.New(), Kind: models.NotificationShareAccepted, Message: "Invitation accepted", Read: true},
		}, nil)

	recorder := suite.api.MakeRequest(http.MethodGet, "/notifications", nil)

	var notifications []service.NotificationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &notifications)
	require.Len(suite.T(), notifications, 2)
	assert.Equal(suite.T(), models.NotificationShareInvited, notifications[0].Kind)
}

func (suite *NotificationHandlerTestSuite) TestListNotifications_UnreadFilter() {
	suite.mockNotificationService.EXPECT().
		ListNotifications(suite.userID, true).
		Return([]service.NotificationResponse{}, nil)

	recorder := suite.api.MakeRequest(http.MethodGet, "/notifications?unread=true", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *NotificationHandlerTestSuite) TestMarkRead_NoContent() {
	notificationID := uuid.New()
	suite.mockNotificationService.EXPECT().
		MarkRead(notificationID, suite.userID).
		Return(nil)

	recorder := suite.api.MakeRequest(http.MethodPut, "/notifications/"+notificationID.String()+"/read", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *NotificationHandlerTestSuite) TestMarkRead_ForeignNotificationHidden() {
	notificationID := uuid.New()
	suite.mockNotificationService.EXPECT().
		MarkRead(notificationID, suite.userID).
		Return(apperrors.ErrNotificationNotFound)

	recorder := suite.api.MakeRequest(http.MethodPut, "/notifications/"+notificationID.String()+"/read", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "notification")
}

func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
