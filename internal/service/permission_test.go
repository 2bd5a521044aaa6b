package service_test

import (
	"testing"

	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/mocks"
	"projects-manager-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newScope(ownerID uuid.UUID) *models.Scope {
	return &models.Scope{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Test Scope",
		OwnerID:   ownerID,
	}
}

func newShare(scopeID, userID uuid.UUID, role models.ShareRole, status models.ShareStatus) *models.ScopeShare {
	return &models.ScopeShare{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ScopeID:   scopeID,
		UserID:    userID,
		Role:      role,
		Status:    status,
	}
}

func TestEffectiveRole_Owner(t *testing.T) {
	ownerID := uuid.New()
	scope := newScope(ownerID)

	assert.Equal(t, service.RoleOwner, service.EffectiveRole(scope, nil, ownerID))
}

func TestEffectiveRole_OwnerWinsOverShare(t *testing.T) {
	ownerID := uuid.New()
	scope := newScope(ownerID)
	// A stray share row for the owner must not demote them.
	share := newShare(scope.ID, ownerID, models.ShareRoleViewer, models.ShareStatusAccepted)

	assert.Equal(t, service.RoleOwner, service.EffectiveRole(scope, share, ownerID))
}

func TestEffectiveRole_AcceptedShares(t *testing.T) {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)

	editor := newShare(scope.ID, userID, models.ShareRoleEditor, models.ShareStatusAccepted)
	assert.Equal(t, service.RoleEditor, service.EffectiveRole(scope, editor, userID))

	viewer := newShare(scope.ID, userID, models.ShareRoleViewer, models.ShareStatusAccepted)
	assert.Equal(t, service.RoleViewer, service.EffectiveRole(scope, viewer, userID))
}

func TestEffectiveRole_InactiveSharesGrantNothing(t *testing.T) {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)

	for _, status := range []models.ShareStatus{
		models.ShareStatusPending,
		models.ShareStatusRevoked,
		models.ShareStatusRejected,
	} {
		share := newShare(scope.ID, userID, models.ShareRoleEditor, status)
		assert.Equal(t, service.RoleNone, service.EffectiveRole(scope, share, userID), "status %s", status)
	}
}

func TestEffectiveRole_ShareForOtherScopeIgnored(t *testing.T) {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)
	share := newShare(uuid.New(), userID, models.ShareRoleEditor, models.ShareStatusAccepted)

	assert.Equal(t, service.RoleNone, service.EffectiveRole(scope, share, userID))
}

func TestAuthorize_RoleActionMatrix(t *testing.T) {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)

	cases := []struct {
		name    string
		role    models.ShareRole
		action  service.Action
		allowed bool
	}{
		{"viewer can view", models.ShareRoleViewer, service.ActionView, true},
		{"viewer cannot edit task", models.ShareRoleViewer, service.ActionEditTask, false},
		{"viewer cannot complete task", models.ShareRoleViewer, service.ActionCompleteTask, false},
		{"editor can edit task", models.ShareRoleEditor, service.ActionEditTask, true},
		{"editor can complete task", models.ShareRoleEditor, service.ActionCompleteTask, true},
		{"editor can edit own config", models.ShareRoleEditor, service.ActionEditOwnIntegrationConfig, true},
		{"editor cannot delete task", models.ShareRoleEditor, service.ActionDeleteTask, false},
		{"editor cannot manage scope", models.ShareRoleEditor, service.ActionManageScope, false},
		{"editor cannot manage sharing", models.ShareRoleEditor, service.ActionManageSharing, false},
		{"editor cannot manage integration flag", models.ShareRoleEditor, service.ActionManageIntegrationFlag, false},
	}

	for _, tc := range cases {
		share := newShare(scope.ID, userID, tc.role, models.ShareStatusAccepted)
		decision := service.Authorize(scope, share, userID, tc.action)
		assert.Equal(t, tc.allowed, decision.Allowed, tc.name)
		if !tc.allowed {
			assert.Equal(t, apperrors.DenyInsufficientRole, decision.Reason, tc.name)
		}
	}
}

func TestAuthorize_OwnerAllowedEverything(t *testing.T) {
	ownerID := uuid.New()
	scope := newScope(ownerID)

	for _, action := range []service.Action{
		service.ActionView,
		service.ActionEditTask,
		service.ActionCompleteTask,
		service.ActionEditOwnIntegrationConfig,
		service.ActionDeleteTask,
		service.ActionManageScope,
		service.ActionManageSharing,
		service.ActionManageIntegrationFlag,
	} {
		decision := service.Authorize(scope, nil, ownerID, action)
		assert.True(t, decision.Allowed, "action %s", action)
		assert.Equal(t, service.RoleOwner, decision.Role)
	}
}

func TestAuthorize_DenyReasons(t *testing.T) {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)

	// No share at all: not a member.
	decision := service.Authorize(scope, nil, userID, service.ActionView)
	assert.False(t, decision.Allowed)
	assert.Equal(t, apperrors.DenyNotAMember, decision.Reason)

	// Pending share: distinct reason so the caller can hint at the invitation.
	pending := newShare(scope.ID, userID, models.ShareRoleEditor, models.ShareStatusPending)
	decision = service.Authorize(scope, pending, userID, service.ActionView)
	assert.False(t, decision.Allowed)
	assert.Equal(t, apperrors.DenyShareNotAccepted, decision.Reason)

	// Revoked share: also share_not_accepted, not not_a_member.
	revoked := newShare(scope.ID, userID, models.ShareRoleEditor, models.ShareStatusRevoked)
	decision = service.Authorize(scope, revoked, userID, service.ActionView)
	assert.False(t, decision.Allowed)
	assert.Equal(t, apperrors.DenyShareNotAccepted, decision.Reason)
}

func TestAuthorizeConfig_OwnRowAnyAcceptedRole(t *testing.T) {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)

	// An accepted viewer manages their own configuration row.
	viewer := newShare(scope.ID, userID, models.ShareRoleViewer, models.ShareStatusAccepted)
	decision := service.AuthorizeConfig(scope, viewer, userID, userID)
	assert.True(t, decision.Allowed)
	assert.Equal(t, service.RoleViewer, decision.Role)

	// Membership is still required: a pending share grants nothing.
	pending := newShare(scope.ID, userID, models.ShareRoleViewer, models.ShareStatusPending)
	decision = service.AuthorizeConfig(scope, pending, userID, userID)
	assert.False(t, decision.Allowed)
	assert.Equal(t, apperrors.DenyShareNotAccepted, decision.Reason)
}

func TestAuthorizeConfig_OtherRowKeepsEditorTier(t *testing.T) {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)
	viewer := newShare(scope.ID, userID, models.ShareRoleViewer, models.ShareStatusAccepted)

	decision := service.AuthorizeConfig(scope, viewer, userID, uuid.New())

	assert.False(t, decision.Allowed)
	assert.Equal(t, apperrors.DenyInsufficientRole, decision.Reason)
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, service.RoleOwner.AtLeast(service.RoleEditor))
	assert.True(t, service.RoleEditor.AtLeast(service.RoleEditor))
	assert.True(t, service.RoleEditor.AtLeast(service.RoleViewer))
	assert.False(t, service.RoleViewer.AtLeast(service.RoleEditor))
	assert.False(t, service.RoleNone.AtLeast(service.RoleViewer))
}

type PermissionServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockShareRepo *mocks.MockScopeShareRepositoryInterface
	permissions   *service.PermissionService
}

func (suite *PermissionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShareRepo = mocks.NewMockScopeShareRepositoryInterface(suite.ctrl)
	suite.permissions = service.NewPermissionService(suite.mockShareRepo)
}

func (suite *PermissionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PermissionServiceTestSuite) TestAuthorize_OwnerSkipsRosterLookup() {
	ownerID := uuid.New()
	scope := newScope(ownerID)

	// No EXPECT on the share repo: the owner path must not hit the roster.
	role, err := suite.permissions.Authorize(scope, ownerID, service.ActionManageSharing)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.RoleOwner, role)
}

func (suite *PermissionServiceTestSuite) TestAuthorize_AcceptedEditor() {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)
	share := newShare(scope.ID, userID, models.ShareRoleEditor, models.ShareStatusAccepted)

	suite.mockShareRepo.EXPECT().GetByScopeAndUser(scope.ID, userID).Return(share, nil)

	role, err := suite.permissions.Authorize(scope, userID, service.ActionEditTask)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.RoleEditor, role)
}

func (suite *PermissionServiceTestSuite) TestAuthorize_MissingShareIsNotAMember() {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)

	suite.mockShareRepo.EXPECT().GetByScopeAndUser(scope.ID, userID).Return(nil, gorm.ErrRecordNotFound)

	role, err := suite.permissions.Authorize(scope, userID, service.ActionView)

	assert.Equal(suite.T(), service.RoleNone, role)
	assert.True(suite.T(), apperrors.IsPermissionDenied(err))
	assert.ErrorIs(suite.T(), err, &apperrors.PermissionDeniedError{Reason: apperrors.DenyNotAMember})
}

func (suite *PermissionServiceTestSuite) TestAuthorizeConfig_ViewerOwnRow() {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)
	share := newShare(scope.ID, userID, models.ShareRoleViewer, models.ShareStatusAccepted)

	suite.mockShareRepo.EXPECT().GetByScopeAndUser(scope.ID, userID).Return(share, nil)

	role, err := suite.permissions.AuthorizeConfig(scope, userID, userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.RoleViewer, role)
}

func (suite *PermissionServiceTestSuite) TestAuthorize_PendingShareDenied() {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)
	share := newShare(scope.ID, userID, models.ShareRoleEditor, models.ShareStatusPending)

	suite.mockShareRepo.EXPECT().GetByScopeAndUser(scope.ID, userID).Return(share, nil)

	_, err := suite.permissions.Authorize(scope, userID, service.ActionView)

	assert.ErrorIs(suite.T(), err, &apperrors.PermissionDeniedError{Reason: apperrors.DenyShareNotAccepted})
}

func TestPermissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionServiceTestSuite))
}
