package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GitHubServiceInterface defines the contract for outbound tracker calls.
// Every call is made with an explicit token; the service itself holds no
// credentials.
type GitHubServiceInterface interface {
	TestConnection(ctx context.Context, token string) error
	ListRepositories(ctx context.Context, token string) ([]RepositorySelection, error)
	ListProjects(ctx context.Context, token, owner, repo string) ([]ProjectSelection, error)
	ListMilestones(ctx context.Context, token, owner, repo string) ([]MilestoneSelection, error)
	EnsureLabel(ctx context.Context, token, owner, repo, label string) error
	CreateIssue(ctx context.Context, token, owner, repo string, req IssueRequest) (*IssueResult, error)
	UpdateIssue(ctx context.Context, token, owner, repo string, number int, req IssueRequest) (*IssueResult, error)
	CloseIssue(ctx context.Context, token, owner, repo string, number int) (*IssueResult, error)
	CommentOnIssue(ctx context.Context, token, owner, repo string, number int, body string) error
	AddIssueToProject(ctx context.Context, token string, projectID, issueID int64) error
}

// ScopeServiceInterface defines the contract for scope and roster operations
type ScopeServiceInterface interface {
	CreateScope(userID uuid.UUID, req *CreateScopeRequest) (*ScopeResponse, error)
	GetScope(scopeID, userID uuid.UUID) (*ScopeResponse, error)
	ListScopes(userID uuid.UUID) ([]ScopeResponse, error)
	UpdateScope(scopeID, userID uuid.UUID, req *UpdateScopeRequest) (*ScopeResponse, error)
	DeleteScope(scopeID, userID uuid.UUID) error
	SetIntegrationEnabled(scopeID, userID uuid.UUID, enabled bool) (*ScopeResponse, error)
	InviteShare(scopeID, userID uuid.UUID, req *InviteShareRequest) (*ShareResponse, error)
	ListShares(scopeID, userID uuid.UUID) ([]ShareResponse, error)
	ListInvitations(userID uuid.UUID) ([]ShareResponse, error)
	RespondToShare(scopeID, userID uuid.UUID, req *RespondShareRequest) (*ShareResponse, error)
	UpdateShareRole(scopeID, userID, collaboratorID uuid.UUID, req *UpdateShareRequest) (*ShareResponse, error)
	RevokeShare(scopeID, userID, collaboratorID uuid.UUID) error
}

// ConfigServiceInterface defines the contract for per-user integration
// configuration operations
type ConfigServiceInterface interface {
	GetOwnConfig(scopeID, userID uuid.UUID) (*ConfigResponse, error)
	UpdateOwnConfig(ctx context.Context, scopeID, userID uuid.UUID, req *UpdateConfigRequest) (*ConfigResponse, error)
	ClearToken(scopeID, userID uuid.UUID) (*ConfigResponse, error)
	TestConnection(ctx context.Context, scopeID, userID uuid.UUID) error
	ListRepositories(ctx context.Context, scopeID, userID uuid.UUID) ([]RepositorySelection, error)
	ListProjects(ctx context.Context, scopeID, userID uuid.UUID) ([]ProjectSelection, error)
	ListMilestones(ctx context.Context, scopeID, userID uuid.UUID) ([]MilestoneSelection, error)
}

// TaskServiceInterface defines the contract for task operations
type TaskServiceInterface interface {
	CreateTask(ctx context.Context, scopeID, userID uuid.UUID, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(scopeID, taskID, userID uuid.UUID) (*TaskResponse, error)
	ListTasks(scopeID, userID uuid.UUID) ([]TaskResponse, error)
	UpdateTask(ctx context.Context, scopeID, taskID, userID uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	SetCompleted(ctx context.Context, scopeID, taskID, userID uuid.UUID, completed bool) (*TaskResponse, error)
	DeleteTask(ctx context.Context, scopeID, taskID, userID uuid.UUID) error
	GetSyncLogs(scopeID, taskID, userID uuid.UUID) ([]SyncLogResponse, error)
}

// NotificationServiceInterface defines the contract for notification
// operations
type NotificationServiceInterface interface {
	ListNotifications(userID uuid.UUID, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(notificationID, userID uuid.UUID) error
}
