package repository

import (
	"projects-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the contract for user data access
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// ScopeRepositoryInterface defines the contract for scope data access
type ScopeRepositoryInterface interface {
	Create(scope *models.Scope) error
	GetByID(id uuid.UUID) (*models.Scope, error)
	Update(scope *models.Scope) error
	Delete(id uuid.UUID) error
	ListForUser(userID uuid.UUID) ([]models.Scope, error)
	NextRank() (int, error)
	SetIntegrationEnabled(scopeID uuid.UUID, enabled bool) error
	// ClaimHiddenLabel performs a compare-and-set on the scope version so two
	// concurrent first configurers converge on exactly one label.
	ClaimHiddenLabel(scopeID uuid.UUID, label string, expectedVersion int) error
}

// ScopeShareRepositoryInterface defines the contract for share roster access
type ScopeShareRepositoryInterface interface {
	Create(share *models.ScopeShare) error
	GetByScopeAndUser(scopeID, userID uuid.UUID) (*models.ScopeShare, error)
	ListByScope(scopeID uuid.UUID) ([]models.ScopeShare, error)
	ListForUser(userID uuid.UUID, status models.ShareStatus) ([]models.ScopeShare, error)
	Update(share *models.ScopeShare) error
	Delete(id uuid.UUID) error
}

// ScopeGitHubConfigRepositoryInterface defines the contract for per-user
// integration configuration access
type ScopeGitHubConfigRepositoryInterface interface {
	Create(config *models.ScopeGitHubConfig) error
	GetByScopeAndUser(scopeID, userID uuid.UUID) (*models.ScopeGitHubConfig, error)
	// GetByScopeAndUserForUpdate locks the row so one user's concurrent
	// requests to the same config serialize instead of losing updates.
	GetByScopeAndUserForUpdate(scopeID, userID uuid.UUID) (*models.ScopeGitHubConfig, error)
	ListByScope(scopeID uuid.UUID) ([]models.ScopeGitHubConfig, error)
	Update(config *models.ScopeGitHubConfig) error
	Delete(id uuid.UUID) error
}

// TaskRepositoryInterface defines the contract for task data access
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
	ListByScope(scopeID uuid.UUID) ([]models.Task, error)
}

// SyncLogRepositoryInterface defines the contract for sync audit records
type SyncLogRepositoryInterface interface {
	Create(log *models.SyncLog) error
	GetLatestForTask(taskID uuid.UUID) (*models.SyncLog, error)
	ListByTask(taskID uuid.UUID) ([]models.SyncLog, error)
}

// NotificationRepositoryInterface defines the contract for notifications
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	ListForUser(userID uuid.UUID, unreadOnly bool) ([]models.Notification, error)
	MarkRead(id uuid.UUID) error
}
