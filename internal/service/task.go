package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/logger"
	"projects-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTaskRequest represents the payload for creating a task
type CreateTaskRequest struct {
	Name        string     `json:"name" binding:"required" validate:"required,min=1" example:"Ship login page"`
	Description string     `json:"description" validate:"max=5000"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Rank        *int       `json:"rank,omitempty"`
}

// UpdateTaskRequest represents the payload for updating a task
type UpdateTaskRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Rank        *int       `json:"rank,omitempty"`
}

// TaskResponse is the canonical task serialization. SyncStatus reports the
// outcome of the sync attempt that accompanied the mutation, if any.
type TaskResponse struct {
	ID            uuid.UUID  `json:"id"`
	ScopeID       uuid.UUID  `json:"scope_id"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Rank          int        `json:"rank"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`

	GitHubIssueNumber *int    `json:"github_issue_number,omitempty"`
	GitHubIssueURL    *string `json:"github_issue_url,omitempty"`
	GitHubIssueState  *string `json:"github_issue_state,omitempty"`

	SyncStatus models.SyncStatus `json:"sync_status,omitempty"`
	SyncDetail string            `json:"sync_detail,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SyncLogResponse is one audit record of a sync attempt
type SyncLogResponse struct {
	ID        uuid.UUID         `json:"id"`
	TaskID    uuid.UUID         `json:"task_id"`
	UserID    uuid.UUID         `json:"user_id"`
	Operation string            `json:"operation"`
	Status    models.SyncStatus `json:"status"`
	Detail    string            `json:"detail,omitempty"`
	CreatedAt string            `json:"created_at"`
}

// TaskService handles task lifecycle and the lazy sync that follows every
// sync-eligible mutation. Sync runs with the acting user's capability only:
// the mutation commits first, the tracker call happens after, and a failed
// or skipped sync never rolls the mutation back.
type TaskService struct {
	taskRepo    repository.TaskRepositoryInterface
	scopeRepo   repository.ScopeRepositoryInterface
	configRepo  repository.ScopeGitHubConfigRepositoryInterface
	syncLogRepo repository.SyncLogRepositoryInterface
	permissions *PermissionService
	capability  *SyncCapabilityController
	resolver    *LabelResolver
	github      GitHubServiceInterface
	validator   *validator.Validate
	log         *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(
	taskRepo repository.TaskRepositoryInterface,
	scopeRepo repository.ScopeRepositoryInterface,
	configRepo repository.ScopeGitHubConfigRepositoryInterface,
	syncLogRepo repository.SyncLogRepositoryInterface,
	permissions *PermissionService,
	capability *SyncCapabilityController,
	resolver *LabelResolver,
	github GitHubServiceInterface,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		scopeRepo:   scopeRepo,
		configRepo:  configRepo,
		syncLogRepo: syncLogRepo,
		permissions: permissions,
		capability:  capability,
		resolver:    resolver,
		github:      github,
		validator:   validator.New(),
		log:         logger.New().WithField("component", "task_service"),
	}
}

// CreateTask creates a task in the scope, then attempts to open a tracker
// issue with the acting user's capability
func (s *TaskService) CreateTask(ctx context.Context, scopeID, userID uuid.UUID, req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	scope, _, err := s.authorizeScope(scopeID, userID, ActionEditTask)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ScopeID:     scope.ID,
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		EndDate:     req.EndDate,
	}
	if req.Rank != nil {
		task.Rank = *req.Rank
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	status, detail := s.syncTask(ctx, scope, task, userID, "create")
	return s.toResponse(task, status, detail), nil
}

// GetTask returns one task the user can view
func (s *TaskService) GetTask(scopeID, taskID, userID uuid.UUID) (*TaskResponse, error) {
	_, task, err := s.loadTask(scopeID, taskID, userID, ActionView)
	if err != nil {
		return nil, err
	}

	status := models.SyncStatus("")
	detail := ""
	if latest, err := s.syncLogRepo.GetLatestForTask(task.ID); err == nil && latest != nil {
		status = latest.Status
		detail = latest.Detail
	}
	return s.toResponse(task, status, detail), nil
}

// ListTasks returns the scope's tasks
func (s *TaskService) ListTasks(scopeID, userID uuid.UUID) ([]TaskResponse, error) {
	_, _, err := s.authorizeScope(scopeID, userID, ActionView)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByScope(scopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, *s.toResponse(&tasks[i], "", ""))
	}
	return responses, nil
}

// UpdateTask edits a task, then pushes the change to its linked issue with
// the acting user's capability
func (s *TaskService) UpdateTask(ctx context.Context, scopeID, taskID, userID uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	scope, task, err := s.loadTask(scopeID, taskID, userID, ActionEditTask)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.EndDate != nil {
		task.EndDate = req.EndDate
	}
	if req.Rank != nil {
		task.Rank = *req.Rank
	}
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	status, detail := s.syncTask(ctx, scope, task, userID, "update")
	return s.toResponse(task, status, detail), nil
}

// SetCompleted marks the task completed or reopens it. Completion closes the
// linked issue after a sign-off comment; reopening reopens it.
func (s *TaskService) SetCompleted(ctx context.Context, scopeID, taskID, userID uuid.UUID, completed bool) (*TaskResponse, error) {
	scope, task, err := s.loadTask(scopeID, taskID, userID, ActionCompleteTask)
	if err != nil {
		return nil, err
	}

	if completed {
		task.Complete(time.Now().UTC())
	} else {
		task.Uncomplete()
	}
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	operation := "complete"
	if !completed {
		operation = "reopen"
	}
	status, detail := s.syncTask(ctx, scope, task, userID, operation)
	return s.toResponse(task, status, detail), nil
}

// DeleteTask deletes a task (owner only). The linked issue is closed best
// effort; the deletion succeeds regardless.
func (s *TaskService) DeleteTask(ctx context.Context, scopeID, taskID, userID uuid.UUID) error {
	scope, task, err := s.loadTask(scopeID, taskID, userID, ActionDeleteTask)
	if err != nil {
		return err
	}

	if task.HasIssueLink() {
		if syncCap, cfg := s.evaluate(scope, userID); syncCap.Ready() && cfg.HasRepository() {
			if _, cerr := s.github.CloseIssue(ctx, syncCap.Token, *cfg.RepoOwner, *cfg.RepoName, *task.GitHubIssueNumber); cerr != nil {
				s.log.WithError(cerr).WithField("task_id", task.ID).Warn("failed to close issue for deleted task")
			}
		}
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// GetSyncLogs returns the task's sync audit trail, newest first
func (s *TaskService) GetSyncLogs(scopeID, taskID, userID uuid.UUID) ([]SyncLogResponse, error) {
	_, task, err := s.loadTask(scopeID, taskID, userID, ActionView)
	if err != nil {
		return nil, err
	}

	logs, err := s.syncLogRepo.ListByTask(task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync logs: %w", err)
	}

	responses := make([]SyncLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, SyncLogResponse{
			ID:        logs[i].ID,
			TaskID:    logs[i].TaskID,
			UserID:    logs[i].UserID,
			Operation: logs[i].Operation,
			Status:    logs[i].Status,
			Detail:    logs[i].Detail,
			CreatedAt: logs[i].CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return responses, nil
}

// syncTask pushes one mutation to the tracker with the acting user's
// capability. Every attempt leaves a sync log; a non-ready capability is a
// skip, a failed call is a failure, and neither touches the task mutation.
func (s *TaskService) syncTask(ctx context.Context, scope *models.Scope, task *models.Task, userID uuid.UUID, operation string) (models.SyncStatus, string) {
	syncCap, cfg := s.evaluate(scope, userID)
	if !syncCap.Ready() {
		detail := string(syncCap.Substate)
		s.recordSync(task.ID, userID, operation, models.SyncStatusSkipped, detail)
		return models.SyncStatusSkipped, detail
	}

	label, _, err := s.resolver.Resolve(scope, cfg)
	if err != nil {
		s.recordSync(task.ID, userID, operation, models.SyncStatusFailed, err.Error())
		return models.SyncStatusFailed, err.Error()
	}

	owner, repo := *cfg.RepoOwner, *cfg.RepoName
	if err := s.github.EnsureLabel(ctx, syncCap.Token, owner, repo, label); err != nil {
		s.recordSync(task.ID, userID, operation, models.SyncStatusFailed, err.Error())
		return models.SyncStatusFailed, err.Error()
	}

	var result *IssueResult
	switch {
	case !task.HasIssueLink():
		result, err = s.github.CreateIssue(ctx, syncCap.Token, owner, repo, IssueRequest{
			Title:     task.Name,
			Body:      s.issueBody(task),
			Labels:    []string{label},
			Milestone: cfg.MilestoneNumber,
		})
		if err == nil && result != nil && cfg.ProjectID != nil {
			if perr := s.addToProject(ctx, syncCap.Token, cfg, result.ID); perr != nil {
				s.log.WithError(perr).WithField("task_id", task.ID).Warn("failed to add issue to project")
			}
		}

	case operation == "complete":
		if cerr := s.github.CommentOnIssue(ctx, syncCap.Token, owner, repo, *task.GitHubIssueNumber, "Task completed."); cerr != nil {
			s.log.WithError(cerr).WithField("task_id", task.ID).Warn("failed to comment on issue")
		}
		result, err = s.github.CloseIssue(ctx, syncCap.Token, owner, repo, *task.GitHubIssueNumber)

	case operation == "reopen":
		state := "open"
		result, err = s.github.UpdateIssue(ctx, syncCap.Token, owner, repo, *task.GitHubIssueNumber, IssueRequest{State: &state})

	default:
		result, err = s.github.UpdateIssue(ctx, syncCap.Token, owner, repo, *task.GitHubIssueNumber, IssueRequest{
			Title:  task.Name,
			Body:   s.issueBody(task),
			Labels: []string{label},
		})
	}

	if err != nil {
		s.recordSync(task.ID, userID, operation, models.SyncStatusFailed, err.Error())
		return models.SyncStatusFailed, err.Error()
	}

	if result != nil {
		task.GitHubIssueID = &result.ID
		task.GitHubIssueNumber = &result.Number
		task.GitHubIssueURL = &result.URL
		task.GitHubIssueState = &result.State
		if uerr := s.taskRepo.Update(task); uerr != nil {
			s.log.WithError(uerr).WithField("task_id", task.ID).Warn("failed to record issue link")
		}
	}

	s.recordSync(task.ID, userID, operation, models.SyncStatusOK, "")
	return models.SyncStatusOK, ""
}

// evaluate loads the acting user's config and runs the capability checks
func (s *TaskService) evaluate(scope *models.Scope, userID uuid.UUID) (SyncCapability, *models.ScopeGitHubConfig) {
	cfg, err := s.configRepo.GetByScopeAndUser(scope.ID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.WithError(err).Warn("failed to load integration config")
		cfg = nil
	}
	return s.capability.Evaluate(scope, cfg), cfg
}

func (s *TaskService) addToProject(ctx context.Context, token string, cfg *models.ScopeGitHubConfig, issueID int64) error {
	var projectID int64
	if _, err := fmt.Sscanf(*cfg.ProjectID, "%d", &projectID); err != nil {
		return fmt.Errorf("invalid project id %q", *cfg.ProjectID)
	}
	return s.github.AddIssueToProject(ctx, token, projectID, issueID)
}

func (s *TaskService) recordSync(taskID, userID uuid.UUID, operation string, status models.SyncStatus, detail string) {
	entry := &models.SyncLog{
		TaskID:    taskID,
		UserID:    userID,
		Operation: operation,
		Status:    status,
		Detail:    detail,
	}
	if err := s.syncLogRepo.Create(entry); err != nil {
		s.log.WithError(err).Warn("failed to record sync log")
	}
}

func (s *TaskService) issueBody(task *models.Task) string {
	body := task.Description
	if task.EndDate != nil {
		if body != "" {
			body += "\n\n"
		}
		body += "Due: " + task.EndDate.Format("2006-01-02")
	}
	return body
}

func (s *TaskService) loadTask(scopeID, taskID, userID uuid.UUID, action Action) (*models.Scope, *models.Task, error) {
	scope, _, err := s.authorizeScope(scopeID, userID, action)
	if err != nil {
		return nil, nil, err
	}

	task, err := s.taskRepo.GetByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrTaskNotFound
		}
		return nil, nil, fmt.Errorf("failed to load task: %w", err)
	}
	if task.ScopeID != scope.ID {
		return nil, nil, apperrors.ErrTaskNotFound
	}
	return scope, task, nil
}

func (s *TaskService) authorizeScope(scopeID, userID uuid.UUID, action Action) (*models.Scope, Role, error) {
	scope, err := s.scopeRepo.GetByID(scopeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, RoleNone, apperrors.ErrScopeNotFound
		}
		return nil, RoleNone, fmt.Errorf("failed to load scope: %w", err)
	}

	role, err := s.permissions.Authorize(scope, userID, action)
	if err != nil {
		return nil, role, err
	}
	return scope, role, nil
}

func (s *TaskService) toResponse(task *models.Task, status models.SyncStatus, detail string) *TaskResponse {
	return &TaskResponse{
		ID:                task.ID,
		ScopeID:           task.ScopeID,
		OwnerID:           task.OwnerID,
		Name:              task.Name,
		Description:       task.Description,
		EndDate:           task.EndDate,
		Rank:              task.Rank,
		Completed:         task.Completed,
		CompletedDate:     task.CompletedDate,
		GitHubIssueNumber: task.GitHubIssueNumber,
		GitHubIssueURL:    task.GitHubIssueURL,
		GitHubIssueState:  task.GitHubIssueState,
		SyncStatus:        status,
		SyncDetail:        detail,
		CreatedAt:         task.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:         task.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
