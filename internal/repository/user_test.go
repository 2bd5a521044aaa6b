package repository_test

import (
	"testing"

	"projects-manager-backend/internal/repository"
	"projects-manager-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UserRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo  *repository.UserRepository
	users *testutils.UserFactory
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	suite.repo = repository.NewUserRepository(suite.DB)
	suite.users = testutils.NewUserFactory()
}

func (suite *UserRepositoryTestSuite) TestCreateAndGetByEmail() {
	user := suite.users.WithEmail("dana@example.com")
	require.NoError(suite.T(), suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("dana@example.com")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, found.ID)
	assert.Equal(suite.T(), user.DisplayName, found.DisplayName)
}

func (suite *UserRepositoryTestSuite) TestGetByEmail_Unknown() {
	_, err := suite.repo.GetByEmail("nobody@example.com")

	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryTestSuite) TestDuplicateEmailRejected() {
	require.NoError(suite.T(), suite.repo.Create(suite.users.WithEmail("dana@example.com")))

	err := suite.repo.Create(suite.users.WithEmail("dana@example.com"))

	assert.Error(suite.T(), err, "the unique email index must reject a second account")
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &UserRepositoryTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}
