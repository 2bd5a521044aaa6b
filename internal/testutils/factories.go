package testutils

import (
	"time"

	"projects-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        id.String()[:8] + "@test.com",
		DisplayName:  "Test User",
		PasswordHash: "$2a$12$not.a.real.hash.for.tests.only",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// ScopeFactory provides methods to create test Scope data
type ScopeFactory struct{}

// NewScopeFactory creates a new ScopeFactory
func NewScopeFactory() *ScopeFactory {
	return &ScopeFactory{}
}

// Create creates a test Scope with default values
func (f *ScopeFactory) Create() *models.Scope {
	return &models.Scope{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Scope",
		Description: "A test scope",
		Rank:        1,
		OwnerID:     uuid.New(),
	}
}

// WithOwner sets the owner ID for the scope
func (f *ScopeFactory) WithOwner(ownerID uuid.UUID) *models.Scope {
	scope := f.Create()
	scope.OwnerID = ownerID
	return scope
}

// WithName sets a custom name for the scope
func (f *ScopeFactory) WithName(name string) *models.Scope {
	scope := f.Create()
	scope.Name = name
	return scope
}

// WithIntegrationEnabled turns the scope integration flag on
func (f *ScopeFactory) WithIntegrationEnabled(ownerID uuid.UUID) *models.Scope {
	scope := f.WithOwner(ownerID)
	scope.GitHubIntegrationEnabled = true
	return scope
}

// ShareFactory provides methods to create test ScopeShare data
type ShareFactory struct{}

// NewShareFactory creates a new ShareFactory
func NewShareFactory() *ShareFactory {
	return &ShareFactory{}
}

// Create creates a test ScopeShare with default values
func (f *ShareFactory) Create(scopeID, userID uuid.UUID) *models.ScopeShare {
	return &models.ScopeShare{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ScopeID: scopeID,
		UserID:  userID,
		Role:    models.ShareRoleEditor,
		Status:  models.ShareStatusPending,
	}
}

// Accepted creates an accepted share with the given role
func (f *ShareFactory) Accepted(scopeID, userID uuid.UUID, role models.ShareRole) *models.ScopeShare {
	share := f.Create(scopeID, userID)
	share.Role = role
	share.Status = models.ShareStatusAccepted
	return share
}

// ConfigFactory provides methods to create test ScopeGitHubConfig data
type ConfigFactory struct{}

// NewConfigFactory creates a new ConfigFactory
func NewConfigFactory() *ConfigFactory {
	return &ConfigFactory{}
}

// Create creates a test config with default values
func (f *ConfigFactory) Create(scopeID, userID uuid.UUID) *models.ScopeGitHubConfig {
	return &models.ScopeGitHubConfig{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ScopeID: scopeID,
		UserID:  userID,
	}
}

// WithRepository sets a repository selection
func (f *ConfigFactory) WithRepository(scopeID, userID uuid.UUID, owner, name string) *models.ScopeGitHubConfig {
	cfg := f.Create(scopeID, userID)
	cfg.Enabled = true
	cfg.RepoOwner = &owner
	cfg.RepoName = &name
	return cfg
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create(scopeID, ownerID uuid.UUID) *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ScopeID:     scopeID,
		OwnerID:     ownerID,
		Name:        "Test Task",
		Description: "A test task",
	}
}

// WithIssueLink sets tracker issue fields on the task
func (f *TaskFactory) WithIssueLink(scopeID, ownerID uuid.UUID, number int) *models.Task {
	task := f.Create(scopeID, ownerID)
	issueID := int64(number) * 1000
	url := "https://github.com/acme/widgets/issues/1"
	state := "open"
	task.GitHubIssueID = &issueID
	task.GitHubIssueNumber = &number
	task.GitHubIssueURL = &url
	task.GitHubIssueState = &state
	return task
}
