package handlers_test

import (
	"net/http"
	"testing"

	"projects-manager-backend/internal/api/handlers"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/mocks"
	"projects-manager-backend/internal/service"
	"projects-manager-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConfigHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockConfigService *mocks.MockConfigServiceInterface
	api               *testutils.HTTPTestSuite
	userID            uuid.UUID
	scopeID           uuid.UUID
}

func (suite *ConfigHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockConfigService = mocks.NewMockConfigServiceInterface(suite.ctrl)
	suite.userID = uuid.New()
	suite.scopeID = uuid.New()

	handler := handlers.NewConfigHandler(suite.mockConfigService)
	suite.api = testutils.SetupHTTPTest()
	suite.api.Router.Use(authAs(suite.userID))
	suite.api.Router.GET("/scopes/:id/config", handler.GetConfig)
	suite.api.Router.PUT("/scopes/:id/config", handler.UpdateConfig)
	suite.api.Router.DELETE("/scopes/:id/config/token", handler.ClearToken)
	suite.api.Router.POST("/scopes/:id/config/test", handler.TestConnection)
	suite.api.Router.GET("/scopes/:id/config/repositories", handler.ListRepositories)
	suite.api.Router.GET("/scopes/:id/config/projects", handler.ListProjects)
	suite.api.Router.GET("/scopes/:id/config/milestones", handler.ListMilestones)
}

func (suite *ConfigHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConfigHandlerTestSuite) configPath(suffix string) string {
	return "/scopes/" + suite.scopeID.String() + "/config" + suffix
}

func (suite *ConfigHandlerTestSuite) TestGetConfig_NeverEchoesToken() {
	suite.mockConfigService.EXPECT().
		GetOwnConfig(suite.scopeID, suite.userID).
		Return(&service.ConfigResponse{ScopeID: suite.scopeID, UserID: suite.userID, Enabled: true, TokenSet: true}, nil)

	recorder := suite.api.MakeRequest(http.MethodGet, suite.configPath(""), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), `"token_set":true`)
	assert.NotContains(suite.T(), recorder.Body.String(), `"token":`)
}

func (suite *ConfigHandlerTestSuite) TestUpdateConfig_ForwardsRepositorySelection() {
	repoID := int64(123456)
	suite.mockConfigService.EXPECT().
		UpdateOwnConfig(gomock.Any(), suite.scopeID, suite.userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, scopeID, userID uuid.UUID, req *service.UpdateConfigRequest) (*service.ConfigResponse, error) {
			require.NotNil(suite.T(), req.RepoOwner)
			assert.Equal(suite.T(), "acme", *req.RepoOwner)
			require.NotNil(suite.T(), req.RepoID)
			assert.Equal(suite.T(), repoID, *req.RepoID)
			return &service.ConfigResponse{
				ScopeID:   scopeID,
				UserID:    userID,
				Enabled:   true,
				RepoID:    req.RepoID,
				RepoOwner: req.RepoOwner,
				RepoName:  req.RepoName,
			}, nil
		})

	recorder := suite.api.MakeRequest(http.MethodPut, suite.configPath(""), gin.H{
		"repo_id":    repoID,
		"repo_owner": "acme",
		"repo_name":  "widgets",
	})

	var resp service.ConfigResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	require.NotNil(suite.T(), resp.RepoName)
	assert.Equal(suite.T(), "widgets", *resp.RepoName)
}

func (suite *ConfigHandlerTestSuite) TestUpdateConfig_EmptyTokenMapsTo400() {
	suite.mockConfigService.EXPECT().
		UpdateOwnConfig(gomock.Any(), suite.scopeID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrEmptyToken)

	recorder := suite.api.MakeRequest(http.MethodPut, suite.configPath(""), gin.H{"token": "   "})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *ConfigHandlerTestSuite) TestClearToken_NoConfigMapsTo404() {
	suite.mockConfigService.EXPECT().
		ClearToken(suite.scopeID, suite.userID).
		Return(nil, apperrors.ErrConfigNotFound)

	recorder := suite.api.MakeRequest(http.MethodDelete, suite.configPath("/token"), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "github configuration")
}

func (suite *ConfigHandlerTestSuite) TestTestConnection_SyncNotReadyMapsTo409() {
	suite.mockConfigService.EXPECT().
		TestConnection(gomock.Any(), suite.scopeID, suite.userID).
		Return(&apperrors.SyncNotReadyError{Substate: apperrors.SyncCredentialUnavailable})

	recorder := suite.api.MakeRequest(http.MethodPost, suite.configPath("/test"), nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *ConfigHandlerTestSuite) TestTestConnection_TrackerRejectionMapsTo502() {
	suite.mockConfigService.EXPECT().
		TestConnection(gomock.Any(), suite.scopeID, suite.userID).
		Return(&apperrors.ExternalServiceError{Status: http.StatusUnauthorized, Message: "bad credentials"})

	recorder := suite.api.MakeRequest(http.MethodPost, suite.configPath("/test"), nil)

	assert.Equal(suite.T(), http.StatusBadGateway, recorder.Code)
}

func (suite *ConfigHandlerTestSuite) TestListRepositories_Success() {
	suite.mockConfigService.EXPECT().
		ListRepositories(gomock.Any(), suite.scopeID, suite.userID).
		Return([]service.RepositorySelection{
			{ID: 1, Owner: "acme", Name: "widgets"},
			{ID: 2, Owner: "acme", Name: "gadgets"},
		}, nil)

	recorder := suite.api.MakeRequest(http.MethodGet, suite.configPath("/repositories"), nil)

	var repos []service.RepositorySelection
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &repos)
	require.Len(suite.T(), repos, 2)
	assert.Equal(suite.T(), "widgets", repos[0].Name)
}

func (suite *ConfigHandlerTestSuite) TestListMilestones_NoRepositoryMapsTo409() {
	suite.mockConfigService.EXPECT().
		ListMilestones(gomock.Any(), suite.scopeID, suite.userID).
		Return(nil, &apperrors.SyncNotReadyError{Substate: apperrors.SyncNotConfigured})

	recorder := suite.api.MakeRequest(http.MethodGet, suite.configPath("/milestones"), nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func TestConfigHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigHandlerTestSuite))
}
