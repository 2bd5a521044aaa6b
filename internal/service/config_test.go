package service_test

import (
	"context"
	"testing"

	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/mocks"
	"projects-manager-backend/internal/service"
	"projects-manager-backend/internal/vault"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ConfigServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockScopeRepo  *mocks.MockScopeRepositoryInterface
	mockConfigRepo *mocks.MockScopeGitHubConfigRepositoryInterface
	mockShareRepo  *mocks.MockScopeShareRepositoryInterface
	mockGitHub     *mocks.MockGitHubServiceInterface
	vault          *vault.Vault
	configService  *service.ConfigService
	ctx            context.Context
}

func (suite *ConfigServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockScopeRepo = mocks.NewMockScopeRepositoryInterface(suite.ctrl)
	suite.mockConfigRepo = mocks.NewMockScopeGitHubConfigRepositoryInterface(suite.ctrl)
	suite.mockShareRepo = mocks.NewMockScopeShareRepositoryInterface(suite.ctrl)
	suite.mockGitHub = mocks.NewMockGitHubServiceInterface(suite.ctrl)
	suite.ctx = context.Background()

	v, err := vault.New("config-test-secret")
	require.NoError(suite.T(), err)
	suite.vault = v

	suite.configService = service.NewConfigService(
		suite.mockScopeRepo,
		suite.mockConfigRepo,
		service.NewPermissionService(suite.mockShareRepo),
		service.NewLabelResolver(suite.mockScopeRepo, suite.mockConfigRepo),
		service.NewSyncCapabilityController(v),
		v,
		suite.mockGitHub,
	)
}

func (suite *ConfigServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConfigServiceTestSuite) TestGetOwnConfig_NoRowYieldsEmptyConfig() {
	ownerID := uuid.New()
	scope := newScope(ownerID)

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUser(scope.ID, ownerID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.configService.GetOwnConfig(scope.ID, ownerID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), scope.ID, resp.ScopeID)
	assert.False(suite.T(), resp.Enabled)
	assert.False(suite.T(), resp.TokenSet)
	assert.Nil(suite.T(), resp.RepoOwner)
}

func (suite *ConfigServiceTestSuite) TestUpdateOwnConfig_EmptyTokenRejected() {
	empty := "   "
	resp, err := suite.configService.UpdateOwnConfig(suite.ctx, uuid.New(), uuid.New(),
		&service.UpdateConfigRequest{Token: &empty})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyToken)
}

func (suite *ConfigServiceTestSuite) TestUpdateOwnConfig_ViewerManagesOwnRow() {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)
	share := newShare(scope.ID, userID, models.ShareRoleViewer, models.ShareStatusAccepted)
	enabled := true

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockShareRepo.EXPECT().GetByScopeAndUser(scope.ID, userID).Return(share, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUserForUpdate(scope.ID, userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockConfigRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(cfg *models.ScopeGitHubConfig) error {
		assert.Equal(suite.T(), userID, cfg.UserID)
		assert.True(suite.T(), cfg.Enabled)
		return nil
	})

	resp, err := suite.configService.UpdateOwnConfig(suite.ctx, scope.ID, userID,
		&service.UpdateConfigRequest{Enabled: &enabled})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Enabled)
}

func (suite *ConfigServiceTestSuite) TestUpdateOwnConfig_PendingShareDenied() {
	ownerID := uuid.New()
	userID := uuid.New()
	scope := newScope(ownerID)
	share := newShare(scope.ID, userID, models.ShareRoleEditor, models.ShareStatusPending)
	enabled := true

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockShareRepo.EXPECT().GetByScopeAndUser(scope.ID, userID).Return(share, nil)

	resp, err := suite.configService.UpdateOwnConfig(suite.ctx, scope.ID, userID,
		&service.UpdateConfigRequest{Enabled: &enabled})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPermissionDenied(err))
}

func (suite *ConfigServiceTestSuite) TestUpdateOwnConfig_CreatesRowAndStoresToken() {
	ownerID := uuid.New()
	scope := newScope(ownerID)
	token := "ghp_newtoken"

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUserForUpdate(scope.ID, ownerID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockConfigRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(cfg *models.ScopeGitHubConfig) error {
		assert.True(suite.T(), cfg.HasToken())
		// Stored credential is sealed, never plaintext.
		assert.NotContains(suite.T(), string(cfg.EncryptedToken), token)
		plain, err := suite.vault.Decrypt(cfg.EncryptedToken)
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), token, plain)
		return nil
	})

	resp, err := suite.configService.UpdateOwnConfig(suite.ctx, scope.ID, ownerID,
		&service.UpdateConfigRequest{Token: &token})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.TokenSet)
	assert.False(suite.T(), resp.Enabled)
}

func (suite *ConfigServiceTestSuite) TestUpdateOwnConfig_RepositoryChangeResolvesLabel() {
	ownerID := uuid.New()
	scope := newScope(ownerID)
	scope.Name = "Work"
	scope.GitHubIntegrationEnabled = true

	sealed, err := suite.vault.Encrypt("ghp_storedtoken")
	require.NoError(suite.T(), err)
	existing := &models.ScopeGitHubConfig{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		ScopeID:        scope.ID,
		UserID:         ownerID,
		Enabled:        true,
		EncryptedToken: sealed,
	}

	owner := "acme"
	name := "widgets"

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUserForUpdate(scope.ID, ownerID).Return(existing, nil)
	suite.mockConfigRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockScopeRepo.EXPECT().ClaimHiddenLabel(scope.ID, "work", scope.Version).Return(nil)
	// Once inside Resolve, once while serializing the response.
	suite.mockConfigRepo.EXPECT().ListByScope(scope.ID).Return([]models.ScopeGitHubConfig{*existing}, nil).Times(2)
	suite.mockGitHub.EXPECT().EnsureLabel(suite.ctx, "ghp_storedtoken", "acme", "widgets", "work").Return(nil)

	resp, err := suite.configService.UpdateOwnConfig(suite.ctx, scope.ID, ownerID,
		&service.UpdateConfigRequest{RepoOwner: &owner, RepoName: &name})

	assert.NoError(suite.T(), err)
	if assert.NotNil(suite.T(), resp.HiddenLabel) {
		assert.Equal(suite.T(), "work", *resp.HiddenLabel)
	}
	assert.Equal(suite.T(), "acme", *resp.RepoOwner)
}

func (suite *ConfigServiceTestSuite) TestUpdateOwnConfig_RepositoryChangeClearsSelections() {
	ownerID := uuid.New()
	scope := newScope(ownerID)
	scope.GitHubIntegrationEnabled = true
	label := "work"
	scope.GitHubHiddenLabel = &label

	sealed, err := suite.vault.Encrypt("ghp_storedtoken")
	require.NoError(suite.T(), err)
	projectID := "77"
	milestone := 3
	existing := configWithRepo(scope.ID, ownerID, "acme", "widgets")
	existing.EncryptedToken = sealed
	existing.ProjectID = &projectID
	existing.MilestoneNumber = &milestone

	newOwner := "acme"
	newName := "gadgets"

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUserForUpdate(scope.ID, ownerID).Return(existing, nil)
	suite.mockConfigRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(cfg *models.ScopeGitHubConfig) error {
		assert.Equal(suite.T(), "gadgets", *cfg.RepoName)
		assert.Nil(suite.T(), cfg.ProjectID, "project belongs to the old repository")
		assert.Nil(suite.T(), cfg.MilestoneNumber, "milestone belongs to the old repository")
		return nil
	})
	suite.mockConfigRepo.EXPECT().ListByScope(scope.ID).Return([]models.ScopeGitHubConfig{*existing}, nil).Times(2)
	suite.mockGitHub.EXPECT().EnsureLabel(suite.ctx, "ghp_storedtoken", "acme", "gadgets", "work").Return(nil)

	resp, err := suite.configService.UpdateOwnConfig(suite.ctx, scope.ID, ownerID,
		&service.UpdateConfigRequest{RepoOwner: &newOwner, RepoName: &newName})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.ProjectID)
	assert.Nil(suite.T(), resp.MilestoneNumber)
}

func (suite *ConfigServiceTestSuite) TestUpdateOwnConfig_DisabledTupleSkipsLabelPush() {
	ownerID := uuid.New()
	scope := newScope(ownerID) // scope-level integration flag off

	sealed, err := suite.vault.Encrypt("ghp_storedtoken")
	require.NoError(suite.T(), err)
	existing := &models.ScopeGitHubConfig{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		ScopeID:        scope.ID,
		UserID:         ownerID,
		Enabled:        false,
		EncryptedToken: sealed,
	}

	owner := "acme"
	name := "widgets"

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUserForUpdate(scope.ID, ownerID).Return(existing, nil)
	suite.mockConfigRepo.EXPECT().Update(gomock.Any()).Return(nil)
	// Label resolution is database work and still runs; the tracker call
	// does not. No EnsureLabel expectation: a disabled tuple never reaches
	// the tracker.
	suite.mockScopeRepo.EXPECT().ClaimHiddenLabel(scope.ID, "test-scope", scope.Version).Return(nil)
	suite.mockConfigRepo.EXPECT().ListByScope(scope.ID).Return([]models.ScopeGitHubConfig{*existing}, nil).Times(2)

	resp, err := suite.configService.UpdateOwnConfig(suite.ctx, scope.ID, ownerID,
		&service.UpdateConfigRequest{RepoOwner: &owner, RepoName: &name})

	assert.NoError(suite.T(), err)
	if assert.NotNil(suite.T(), resp.HiddenLabel) {
		assert.Equal(suite.T(), "test-scope", *resp.HiddenLabel)
	}
	assert.False(suite.T(), resp.Enabled)
}

func (suite *ConfigServiceTestSuite) TestUpdateOwnConfig_SameRepositoryKeepsSelections() {
	ownerID := uuid.New()
	scope := newScope(ownerID)
	label := "work"
	scope.GitHubHiddenLabel = &label

	projectID := "77"
	existing := configWithRepo(scope.ID, ownerID, "acme", "widgets")
	existing.ProjectID = &projectID

	sameOwner := "ACME"
	sameName := "Widgets"

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUserForUpdate(scope.ID, ownerID).Return(existing, nil)
	suite.mockConfigRepo.EXPECT().Update(gomock.Any()).Return(nil)
	// No label resolution, no tracker call: the repository did not change.
	suite.mockConfigRepo.EXPECT().ListByScope(scope.ID).Return([]models.ScopeGitHubConfig{*existing}, nil)

	resp, err := suite.configService.UpdateOwnConfig(suite.ctx, scope.ID, ownerID,
		&service.UpdateConfigRequest{RepoOwner: &sameOwner, RepoName: &sameName})

	assert.NoError(suite.T(), err)
	if assert.NotNil(suite.T(), resp.ProjectID) {
		assert.Equal(suite.T(), "77", *resp.ProjectID)
	}
}

func (suite *ConfigServiceTestSuite) TestClearToken_KeepsSelections() {
	ownerID := uuid.New()
	scope := newScope(ownerID)

	sealed, err := suite.vault.Encrypt("ghp_storedtoken")
	require.NoError(suite.T(), err)
	existing := configWithRepo(scope.ID, ownerID, "acme", "widgets")
	existing.EncryptedToken = sealed

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUserForUpdate(scope.ID, ownerID).Return(existing, nil)
	suite.mockConfigRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(cfg *models.ScopeGitHubConfig) error {
		assert.False(suite.T(), cfg.HasToken())
		assert.True(suite.T(), cfg.HasRepository())
		return nil
	})
	suite.mockConfigRepo.EXPECT().ListByScope(scope.ID).Return([]models.ScopeGitHubConfig{*existing}, nil)

	resp, err := suite.configService.ClearToken(scope.ID, ownerID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.TokenSet)
	assert.Equal(suite.T(), "acme", *resp.RepoOwner)
}

func (suite *ConfigServiceTestSuite) TestClearToken_NoConfig() {
	ownerID := uuid.New()
	scope := newScope(ownerID)

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUserForUpdate(scope.ID, ownerID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.configService.ClearToken(scope.ID, ownerID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConfigNotFound)
}

func (suite *ConfigServiceTestSuite) TestTestConnection_UsesDecryptedToken() {
	ownerID := uuid.New()
	scope := newScope(ownerID)
	scope.GitHubIntegrationEnabled = true

	sealed, err := suite.vault.Encrypt("ghp_storedtoken")
	require.NoError(suite.T(), err)
	existing := configWithRepo(scope.ID, ownerID, "acme", "widgets")
	existing.EncryptedToken = sealed

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUser(scope.ID, ownerID).Return(existing, nil)
	suite.mockGitHub.EXPECT().TestConnection(suite.ctx, "ghp_storedtoken").Return(nil)

	assert.NoError(suite.T(), suite.configService.TestConnection(suite.ctx, scope.ID, ownerID))
}

func (suite *ConfigServiceTestSuite) TestTestConnection_DisabledScopeNotReady() {
	ownerID := uuid.New()
	scope := newScope(ownerID) // scope-level integration flag off

	sealed, err := suite.vault.Encrypt("ghp_storedtoken")
	require.NoError(suite.T(), err)
	existing := configWithRepo(scope.ID, ownerID, "acme", "widgets")
	existing.EncryptedToken = sealed

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUser(scope.ID, ownerID).Return(existing, nil)
	// No TestConnection expectation: the scope flag silences every tuple.

	err = suite.configService.TestConnection(suite.ctx, scope.ID, ownerID)

	assert.ErrorIs(suite.T(), err, &apperrors.SyncNotReadyError{Substate: apperrors.SyncDisabled})
}

func (suite *ConfigServiceTestSuite) TestListRepositories_NoTokenNotReady() {
	ownerID := uuid.New()
	scope := newScope(ownerID)
	scope.GitHubIntegrationEnabled = true
	existing := configWithRepo(scope.ID, ownerID, "acme", "widgets") // no token

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUser(scope.ID, ownerID).Return(existing, nil)

	repos, err := suite.configService.ListRepositories(suite.ctx, scope.ID, ownerID)

	assert.Nil(suite.T(), repos)
	assert.ErrorIs(suite.T(), err, &apperrors.SyncNotReadyError{Substate: apperrors.SyncCredentialUnavailable})
}

func (suite *ConfigServiceTestSuite) TestListProjects_NoRepositoryNotReady() {
	ownerID := uuid.New()
	scope := newScope(ownerID)
	scope.GitHubIntegrationEnabled = true

	sealed, err := suite.vault.Encrypt("ghp_storedtoken")
	require.NoError(suite.T(), err)
	existing := &models.ScopeGitHubConfig{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		ScopeID:        scope.ID,
		UserID:         ownerID,
		Enabled:        true,
		EncryptedToken: sealed,
	}

	suite.mockScopeRepo.EXPECT().GetByID(scope.ID).Return(scope, nil)
	suite.mockConfigRepo.EXPECT().GetByScopeAndUser(scope.ID, ownerID).Return(existing, nil)

	projects, err := suite.configService.ListProjects(suite.ctx, scope.ID, ownerID)

	assert.Nil(suite.T(), projects)
	assert.ErrorIs(suite.T(), err, &apperrors.SyncNotReadyError{Substate: apperrors.SyncNotConfigured})
}

func TestConfigServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigServiceTestSuite))
}
