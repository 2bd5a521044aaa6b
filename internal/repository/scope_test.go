package repository_test

import (
	"testing"

	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/repository"
	"projects-manager-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ScopeRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo      *repository.ScopeRepository
	shareRepo *repository.ScopeShareRepository
	users     *testutils.UserFactory
	scopes    *testutils.ScopeFactory
	shares    *testutils.ShareFactory
}

func (suite *ScopeRepositoryTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	suite.repo = repository.NewScopeRepository(suite.DB)
	suite.shareRepo = repository.NewScopeShareRepository(suite.DB)
	suite.users = testutils.NewUserFactory()
	suite.scopes = testutils.NewScopeFactory()
	suite.shares = testutils.NewShareFactory()
}

func (suite *ScopeRepositoryTestSuite) createUser() *models.User {
	user := suite.users.Create()
	require.NoError(suite.T(), suite.DB.Create(user).Error)
	return user
}

func (suite *ScopeRepositoryTestSuite) TestCreateAndGetByID() {
	owner := suite.createUser()
	scope := suite.scopes.WithOwner(owner.ID)

	require.NoError(suite.T(), suite.repo.Create(scope))

	found, err := suite.repo.GetByID(scope.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), scope.Name, found.Name)
	assert.Equal(suite.T(), owner.ID, found.OwnerID)
	assert.Equal(suite.T(), 0, found.Version)
	assert.Nil(suite.T(), found.GitHubHiddenLabel)
}

func (suite *ScopeRepositoryTestSuite) TestNextRank() {
	rank, err := suite.repo.NextRank()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, rank)

	owner := suite.createUser()
	scope := suite.scopes.WithOwner(owner.ID)
	scope.Rank = 7
	require.NoError(suite.T(), suite.repo.Create(scope))

	rank, err = suite.repo.NextRank()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 8, rank)
}

func (suite *ScopeRepositoryTestSuite) TestListForUser_OwnedAndAcceptedOnly() {
	owner := suite.createUser()
	collaborator := suite.createUser()

	owned := suite.scopes.WithOwner(owner.ID)
	require.NoError(suite.T(), suite.repo.Create(owned))

	sharedScope := suite.scopes.WithOwner(collaborator.ID)
	require.NoError(suite.T(), suite.repo.Create(sharedScope))
	require.NoError(suite.T(), suite.shareRepo.Create(
		suite.shares.Accepted(sharedScope.ID, owner.ID, models.ShareRoleViewer)))

	pendingScope := suite.scopes.WithOwner(collaborator.ID)
	require.NoError(suite.T(), suite.repo.Create(pendingScope))
	require.NoError(suite.T(), suite.shareRepo.Create(
		suite.shares.Create(pendingScope.ID, owner.ID)))

	scopes, err := suite.repo.ListForUser(owner.ID)
	require.NoError(suite.T(), err)

	require.Len(suite.T(), scopes, 2)
	ids := []string{scopes[0].ID.String(), scopes[1].ID.String()}
	assert.Contains(suite.T(), ids, owned.ID.String())
	assert.Contains(suite.T(), ids, sharedScope.ID.String())
	assert.NotContains(suite.T(), ids, pendingScope.ID.String())
}

func (suite *ScopeRepositoryTestSuite) TestSetIntegrationEnabled() {
	owner := suite.createUser()
	scope := suite.scopes.WithOwner(owner.ID)
	require.NoError(suite.T(), suite.repo.Create(scope))

	require.NoError(suite.T(), suite.repo.SetIntegrationEnabled(scope.ID, true))

	found, err := suite.repo.GetByID(scope.ID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), found.GitHubIntegrationEnabled)
}

func (suite *ScopeRepositoryTestSuite) TestSetIntegrationEnabled_UnknownScope() {
	scope := suite.scopes.Create()

	err := suite.repo.SetIntegrationEnabled(scope.ID, true)

	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *ScopeRepositoryTestSuite) TestClaimHiddenLabel_WinnerBumpsVersion() {
	owner := suite.createUser()
	scope := suite.scopes.WithOwner(owner.ID)
	require.NoError(suite.T(), suite.repo.Create(scope))

	require.NoError(suite.T(), suite.repo.ClaimHiddenLabel(scope.ID, "website-redesign", 0))

	found, err := suite.repo.GetByID(scope.ID)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), found.GitHubHiddenLabel)
	assert.Equal(suite.T(), "website-redesign", *found.GitHubHiddenLabel)
	assert.Equal(suite.T(), 1, found.Version)
}

func (suite *ScopeRepositoryTestSuite) TestClaimHiddenLabel_StaleVersionLoses() {
	owner := suite.createUser()
	scope := suite.scopes.WithOwner(owner.ID)
	require.NoError(suite.T(), suite.repo.Create(scope))

	require.NoError(suite.T(), suite.repo.ClaimHiddenLabel(scope.ID, "winner", 0))

	err := suite.repo.ClaimHiddenLabel(scope.ID, "loser", 0)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLabelConflict)

	found, getErr := suite.repo.GetByID(scope.ID)
	require.NoError(suite.T(), getErr)
	assert.Equal(suite.T(), "winner", *found.GitHubHiddenLabel)
	assert.Equal(suite.T(), 1, found.Version)
}

func (suite *ScopeRepositoryTestSuite) TestDelete_CascadesToChildren() {
	owner := suite.createUser()
	collaborator := suite.createUser()
	scope := suite.scopes.WithOwner(owner.ID)
	require.NoError(suite.T(), suite.repo.Create(scope))

	require.NoError(suite.T(), suite.shareRepo.Create(
		suite.shares.Accepted(scope.ID, collaborator.ID, models.ShareRoleEditor)))

	task := testutils.NewTaskFactory().Create(scope.ID, owner.ID)
	require.NoError(suite.T(), suite.DB.Create(task).Error)

	cfg := testutils.NewConfigFactory().Create(scope.ID, owner.ID)
	require.NoError(suite.T(), suite.DB.Create(cfg).Error)

	require.NoError(suite.T(), suite.repo.Delete(scope.ID))

	var shareCount, taskCount, configCount int64
	suite.DB.Model(&models.ScopeShare{}).Where("scope_id = ?", scope.ID).Count(&shareCount)
	suite.DB.Model(&models.Task{}).Where("scope_id = ?", scope.ID).Count(&taskCount)
	suite.DB.Model(&models.ScopeGitHubConfig{}).Where("scope_id = ?", scope.ID).Count(&configCount)
	assert.Zero(suite.T(), shareCount)
	assert.Zero(suite.T(), taskCount)
	assert.Zero(suite.T(), configCount)
}

func TestScopeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &ScopeRepositoryTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
