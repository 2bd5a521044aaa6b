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

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TaskHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTaskService *mocks.MockTaskServiceInterface
	api             *testutils.HTTPTestSuite
	userID          uuid.UUID
	scopeID         uuid.UUID
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTaskService = mocks.NewMockTaskServiceInterface(suite.ctrl)
	suite.userID = uuid.New()
	suite.scopeID = uuid.New()

	handler := handlers.NewTaskHandler(suite.mockTaskService)
	suite.api = testutils.SetupHTTPTest()
	suite.api.Router.Use(authAs(suite.userID))
	suite.api.Router.POST("/scopes/:id/tasks", handler.CreateTask)
	suite.api.Router.GET("/scopes/:id/tasks", handler.ListTasks)
	suite.api.Router.GET("/scopes/:id/tasks/:taskId", handler.GetTask)
	suite.api.Router.PUT("/scopes/:id/tasks/:taskId", handler.UpdateTask)
	suite.api.Router.PUT("/scopes/:id/tasks/:taskId/completion", handler.SetCompleted)
	suite.api.Router.DELETE("/scopes/:id/tasks/:taskId", handler.DeleteTask)
	suite.api.Router.GET("/scopes/:id/tasks/:taskId/sync-logs", handler.GetSyncLogs)
}

func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskHandlerTestSuite) tasksPath(parts ...string) string {
	path := "/scopes/" + suite.scopeID.String() + "/tasks"
	for _, part := range parts {
		path += "/" + part
	}
	return path
}

func (suite *TaskHandlerTestSuite) TestCreateTask_ReportsSyncOutcome() {
	taskID := uuid.New()
	issueNumber := 42
	suite.mockTaskService.EXPECT().
		CreateTask(gomock.Any(), suite.scopeID, suite.userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, scopeID, userID uuid.UUID, req *service.CreateTaskRequest) (*service.TaskResponse, error) {
			assert.Equal(suite.T(), "Ship login page", req.Name)
			return &service.TaskResponse{
				ID:                taskID,
				ScopeID:           scopeID,
				OwnerID:           userID,
				Name:              req.Name,
				GitHubIssueNumber: &issueNumber,
				SyncStatus:        models.SyncStatusOK,
			}, nil
		})

	recorder := suite.api.MakeRequest(http.MethodPost, suite.tasksPath(), gin.H{"name": "Ship login page"})

	var resp service.TaskResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), taskID, resp.ID)
	require.NotNil(suite.T(), resp.GitHubIssueNumber)
	assert.Equal(suite.T(), 42, *resp.GitHubIssueNumber)
	assert.Equal(suite.T(), models.SyncStatusOK, resp.SyncStatus)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_MissingName() {
	recorder := suite.api.MakeRequest(http.MethodPost, suite.tasksPath(), gin.H{"description": "no name"})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TaskHandlerTestSuite) TestGetTask_NotFound() {
	taskID := uuid.New()
	suite.mockTaskService.EXPECT().
		GetTask(suite.scopeID, taskID, suite.userID).
		Return(nil, apperrors.ErrTaskNotFound)

	recorder := suite.api.MakeRequest(http.MethodGet, suite.tasksPath(taskID.String()), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "task")
}

func (suite *TaskHandlerTestSuite) TestListTasks_NonMemberForbidden() {
	suite.mockTaskService.EXPECT().
		ListTasks(suite.scopeID, suite.userID).
		Return(nil, &apperrors.PermissionDeniedError{Reason: apperrors.DenyNotAMember})

	recorder := suite.api.MakeRequest(http.MethodGet, suite.tasksPath(), nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

func (suite *TaskHandlerTestSuite) TestSetCompleted_RequiresCompletedField() {
	taskID := uuid.New()

	recorder := suite.api.MakeRequest(http.MethodPut, suite.tasksPath(taskID.String(), "completion"), gin.H{})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TaskHandlerTestSuite) TestSetCompleted_Reopen() {
	taskID := uuid.New()
	suite.mockTaskService.EXPECT().
		SetCompleted(gomock.Any(), suite.scopeID, taskID, suite.userID, false).
		Return(&service.TaskResponse{ID: taskID, Completed: false, SyncStatus: models.SyncStatusOK}, nil)

	recorder := suite.api.MakeRequest(http.MethodPut, suite.tasksPath(taskID.String(), "completion"), gin.H{"completed": false})

	var resp service.TaskResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.False(suite.T(), resp.Completed)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_NoContent() {
	taskID := uuid.New()
	suite.mockTaskService.EXPECT().
		DeleteTask(gomock.Any(), suite.scopeID, taskID, suite.userID).
		Return(nil)

	recorder := suite.api.MakeRequest(http.MethodDelete, suite.tasksPath(taskID.String()), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *TaskHandlerTestSuite) TestGetSyncLogs_ReturnsTrail() {
	taskID := uuid.New()
	suite.mockTaskService.EXPECT().
		GetSyncLogs(suite.scopeID, taskID, suite.userID).
		Return([]service.SyncLogResponse{
			{ID: uuid.New(), TaskID: taskID, Operation: "create", Status: models.SyncStatusFailed, Detail: "tracker unreachable"},
			{ID: uuid.New(), TaskID: taskID, Operation: "create", Status: models.SyncStatusOK},
		}, nil)

	recorder := suite.api.MakeRequest(http.MethodGet, suite.tasksPath(taskID.String(), "sync-logs"), nil)

	var logs []service.SyncLogResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &logs)
	require.Len(suite.T(), logs, 2)
	assert.Equal(suite.T(), models.SyncStatusFailed, logs[0].Status)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
