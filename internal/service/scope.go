package service

import (
	"errors"
	"fmt"

	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/logger"
	"projects-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateScopeRequest represents the payload for creating a scope
type CreateScopeRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=80" example:"Website Redesign"`
	Description string `json:"description" validate:"max=2000" example:"Q3 marketing site overhaul"`
}

// UpdateScopeRequest represents the payload for updating a scope
type UpdateScopeRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=80"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Rank        *int    `json:"rank,omitempty"`
}

// ScopeResponse is the canonical scope serialization
type ScopeResponse struct {
	ID                       uuid.UUID `json:"id"`
	Name                     string    `json:"name"`
	Description              string    `json:"description"`
	Rank                     int       `json:"rank"`
	OwnerID                  uuid.UUID `json:"owner_id"`
	GitHubIntegrationEnabled bool      `json:"github_integration_enabled"`
	GitHubHiddenLabel        *string   `json:"github_hidden_label,omitempty"`
	Role                     Role      `json:"role"`
	CreatedAt                string    `json:"created_at"`
	UpdatedAt                string    `json:"updated_at"`
}

// InviteShareRequest represents the payload for inviting a collaborator
type InviteShareRequest struct {
	Email string           `json:"email" validate:"required,email" example:"dana@example.com"`
	Role  models.ShareRole `json:"role" validate:"required,oneof=viewer editor" example:"editor"`
}

// UpdateShareRequest represents the payload for changing a collaborator's role
type UpdateShareRequest struct {
	Role models.ShareRole `json:"role" validate:"required,oneof=viewer editor"`
}

// RespondShareRequest represents the invitee's answer to a pending invitation
type RespondShareRequest struct {
	Accept bool `json:"accept"`
}

// ShareResponse is the canonical share serialization
type ShareResponse struct {
	ID        uuid.UUID          `json:"id"`
	ScopeID   uuid.UUID          `json:"scope_id"`
	UserID    uuid.UUID          `json:"user_id"`
	UserEmail string             `json:"user_email,omitempty"`
	Role      models.ShareRole   `json:"role"`
	Status    models.ShareStatus `json:"status"`
	CreatedAt string             `json:"created_at"`
}

// ScopeService handles scope lifecycle, the integration flag and the sharing
// roster. Every entry point except creation goes through the permission gate.
type ScopeService struct {
	scopeRepo        repository.ScopeRepositoryInterface
	shareRepo        repository.ScopeShareRepositoryInterface
	userRepo         repository.UserRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	permissions      *PermissionService
	validator        *validator.Validate
	log              *logger.Logger
}

// NewScopeService creates a new scope service
func NewScopeService(
	scopeRepo repository.ScopeRepositoryInterface,
	shareRepo repository.ScopeShareRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	notificationRepo repository.NotificationRepositoryInterface,
	permissions *PermissionService,
) *ScopeService {
	return &ScopeService{
		scopeRepo:        scopeRepo,
		shareRepo:        shareRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		permissions:      permissions,
		validator:        validator.New(),
		log:              logger.New().WithField("component", "scope_service"),
	}
}

// CreateScope creates a scope owned by the acting user
func (s *ScopeService) CreateScope(userID uuid.UUID, req *CreateScopeRequest) (*ScopeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	rank, err := s.scopeRepo.NextRank()
	if err != nil {
		return nil, fmt.Errorf("failed to assign scope rank: %w", err)
	}

	scope := &models.Scope{
		Name:        req.Name,
		Description: req.Description,
		Rank:        rank,
		OwnerID:     userID,
	}
	if err := s.scopeRepo.Create(scope); err != nil {
		return nil, fmt.Errorf("failed to create scope: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"scope_id": scope.ID,
		"owner_id": userID,
	}).Info("scope created")

	return s.toResponse(scope, RoleOwner), nil
}

// GetScope returns one scope the user can view
func (s *ScopeService) GetScope(scopeID, userID uuid.UUID) (*ScopeResponse, error) {
	scope, role, err := s.authorizeScope(scopeID, userID, ActionView)
	if err != nil {
		return nil, err
	}
	return s.toResponse(scope, role), nil
}

// ListScopes returns every scope the user owns or participates in
func (s *ScopeService) ListScopes(userID uuid.UUID) ([]ScopeResponse, error) {
	scopes, err := s.scopeRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scopes: %w", err)
	}

	responses := make([]ScopeResponse, 0, len(scopes))
	for i := range scopes {
		role := RoleViewer
		if scopes[i].IsOwner(userID) {
			role = RoleOwner
		} else if share, err := s.shareRepo.GetByScopeAndUser(scopes[i].ID, userID); err == nil && share != nil {
			role = EffectiveRole(&scopes[i], share, userID)
		}
		responses = append(responses, *s.toResponse(&scopes[i], role))
	}
	return responses, nil
}

// UpdateScope updates scope metadata (owner only)
func (s *ScopeService) UpdateScope(scopeID, userID uuid.UUID, req *UpdateScopeRequest) (*ScopeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	scope, role, err := s.authorizeScope(scopeID, userID, ActionManageScope)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		scope.Name = *req.Name
	}
	if req.Description != nil {
		scope.Description = *req.Description
	}
	if req.Rank != nil {
		scope.Rank = *req.Rank
	}
	if err := s.scopeRepo.Update(scope); err != nil {
		return nil, fmt.Errorf("failed to update scope: %w", err)
	}
	return s.toResponse(scope, role), nil
}

// DeleteScope deletes the scope and everything under it (owner only)
func (s *ScopeService) DeleteScope(scopeID, userID uuid.UUID) error {
	scope, _, err := s.authorizeScope(scopeID, userID, ActionManageScope)
	if err != nil {
		return err
	}

	if err := s.scopeRepo.Delete(scope.ID); err != nil {
		return fmt.Errorf("failed to delete scope: %w", err)
	}
	s.log.WithField("scope_id", scopeID).Info("scope deleted")
	return nil
}

// SetIntegrationEnabled flips the scope-level integration gate (owner only).
// Turning it off silences every participant; personal configs keep their
// fields and come back untouched when the flag returns.
func (s *ScopeService) SetIntegrationEnabled(scopeID, userID uuid.UUID, enabled bool) (*ScopeResponse, error) {
	scope, role, err := s.authorizeScope(scopeID, userID, ActionManageIntegrationFlag)
	if err != nil {
		return nil, err
	}

	if scope.GitHubIntegrationEnabled != enabled {
		if err := s.scopeRepo.SetIntegrationEnabled(scope.ID, enabled); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrScopeNotFound
			}
			return nil, fmt.Errorf("failed to update integration flag: %w", err)
		}
		scope.GitHubIntegrationEnabled = enabled
		s.log.WithFields(map[string]interface{}{
			"scope_id": scopeID,
			"enabled":  enabled,
		}).Info("scope integration flag changed")
	}
	return s.toResponse(scope, role), nil
}

// InviteShare invites a user (by email) to the scope roster (owner only).
// A previously revoked or rejected share for the same user is revived as a
// fresh pending invitation instead of a duplicate row.
func (s *ScopeService) InviteShare(scopeID, userID uuid.UUID, req *InviteShareRequest) (*ShareResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	scope, _, err := s.authorizeScope(scopeID, userID, ActionManageSharing)
	if err != nil {
		return nil, err
	}

	invitee, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up invitee: %w", err)
	}
	if scope.IsOwner(invitee.ID) {
		return nil, apperrors.ErrCannotShareWithSelf
	}

	existing, err := s.shareRepo.GetByScopeAndUser(scope.ID, invitee.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing share: %w", err)
	}

	var share *models.ScopeShare
	if existing != nil {
		if existing.Status == models.ShareStatusPending || existing.Status == models.ShareStatusAccepted {
			return nil, apperrors.ErrShareExists
		}
		existing.Role = req.Role
		existing.Status = models.ShareStatusPending
		existing.InviterID = &userID
		if err := s.shareRepo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to revive share: %w", err)
		}
		share = existing
	} else {
		share = &models.ScopeShare{
			ScopeID:   scope.ID,
			UserID:    invitee.ID,
			InviterID: &userID,
			Role:      req.Role,
			Status:    models.ShareStatusPending,
		}
		if err := s.shareRepo.Create(share); err != nil {
			return nil, fmt.Errorf("failed to create share: %w", err)
		}
	}

	s.notify(invitee.ID, scope.ID, models.NotificationShareInvited,
		fmt.Sprintf("You were invited to %q as %s", scope.Name, share.Role))

	resp := s.toShareResponse(share)
	resp.UserEmail = invitee.Email
	return resp, nil
}

// ListShares returns the scope roster (owner only)
func (s *ScopeService) ListShares(scopeID, userID uuid.UUID) ([]ShareResponse, error) {
	_, _, err := s.authorizeScope(scopeID, userID, ActionManageSharing)
	if err != nil {
		return nil, err
	}

	shares, err := s.shareRepo.ListByScope(scopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}

	responses := make([]ShareResponse, 0, len(shares))
	for i := range shares {
		resp := s.toShareResponse(&shares[i])
		if user, err := s.userRepo.GetByID(shares[i].UserID); err == nil {
			resp.UserEmail = user.Email
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// ListInvitations returns the acting user's pending incoming invitations
func (s *ScopeService) ListInvitations(userID uuid.UUID) ([]ShareResponse, error) {
	shares, err := s.shareRepo.ListForUser(userID, models.ShareStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	responses := make([]ShareResponse, 0, len(shares))
	for i := range shares {
		responses = append(responses, *s.toShareResponse(&shares[i]))
	}
	return responses, nil
}

// RespondToShare lets the invitee accept or reject their own pending
// invitation. Nobody else may answer it, the owner included.
func (s *ScopeService) RespondToShare(scopeID, userID uuid.UUID, req *RespondShareRequest) (*ShareResponse, error) {
	share, err := s.shareRepo.GetByScopeAndUser(scopeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShareNotFound
		}
		return nil, fmt.Errorf("failed to load share: %w", err)
	}
	if share.Status != models.ShareStatusPending {
		return nil, apperrors.NewValidationError("status", "invitation is not pending")
	}

	kind := models.NotificationShareRejected
	if req.Accept {
		share.Status = models.ShareStatusAccepted
		kind = models.NotificationShareAccepted
	} else {
		share.Status = models.ShareStatusRejected
	}
	if err := s.shareRepo.Update(share); err != nil {
		return nil, fmt.Errorf("failed to update share: %w", err)
	}

	scope, err := s.scopeRepo.GetByID(scopeID)
	if err == nil {
		verb := "accepted"
		if !req.Accept {
			verb = "declined"
		}
		s.notify(scope.OwnerID, scope.ID, kind,
			fmt.Sprintf("Your invitation to %q was %s", scope.Name, verb))
	}

	return s.toShareResponse(share), nil
}

// UpdateShareRole changes a collaborator's role (owner only). Takes effect on
// the collaborator's next request.
func (s *ScopeService) UpdateShareRole(scopeID, userID, collaboratorID uuid.UUID, req *UpdateShareRequest) (*ShareResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	_, _, err := s.authorizeScope(scopeID, userID, ActionManageSharing)
	if err != nil {
		return nil, err
	}

	share, err := s.shareRepo.GetByScopeAndUser(scopeID, collaboratorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShareNotFound
		}
		return nil, fmt.Errorf("failed to load share: %w", err)
	}

	share.Role = req.Role
	if err := s.shareRepo.Update(share); err != nil {
		return nil, fmt.Errorf("failed to update share role: %w", err)
	}
	return s.toShareResponse(share), nil
}

// RevokeShare revokes a collaborator's access (owner only). The row stays for
// audit; access ends on the collaborator's next request.
func (s *ScopeService) RevokeShare(scopeID, userID, collaboratorID uuid.UUID) error {
	scope, _, err := s.authorizeScope(scopeID, userID, ActionManageSharing)
	if err != nil {
		return err
	}

	share, err := s.shareRepo.GetByScopeAndUser(scopeID, collaboratorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShareNotFound
		}
		return fmt.Errorf("failed to load share: %w", err)
	}

	share.Status = models.ShareStatusRevoked
	if err := s.shareRepo.Update(share); err != nil {
		return fmt.Errorf("failed to revoke share: %w", err)
	}

	s.notify(collaboratorID, scope.ID, models.NotificationShareRevoked,
		fmt.Sprintf("Your access to %q was revoked", scope.Name))
	return nil
}

// authorizeScope loads the scope and gates the action in one step
func (s *ScopeService) authorizeScope(scopeID, userID uuid.UUID, action Action) (*models.Scope, Role, error) {
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

func (s *ScopeService) toResponse(scope *models.Scope, role Role) *ScopeResponse {
	return &ScopeResponse{
		ID:                       scope.ID,
		Name:                     scope.Name,
		Description:              scope.Description,
		Rank:                     scope.Rank,
		OwnerID:                  scope.OwnerID,
		GitHubIntegrationEnabled: scope.GitHubIntegrationEnabled,
		GitHubHiddenLabel:        scope.GitHubHiddenLabel,
		Role:                     role,
		CreatedAt:                scope.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:                scope.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *ScopeService) toShareResponse(share *models.ScopeShare) *ShareResponse {
	return &ShareResponse{
		ID:        share.ID,
		ScopeID:   share.ScopeID,
		UserID:    share.UserID,
		Role:      share.Role,
		Status:    share.Status,
		CreatedAt: share.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *ScopeService) notify(userID, scopeID uuid.UUID, kind models.NotificationKind, message string) {
	notification := &models.Notification{
		UserID:  userID,
		ScopeID: &scopeID,
		Kind:    kind,
		Message: message,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		s.log.WithError(err).Warn("failed to create notification")
	}
}
