package service

import (
	"errors"

	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is a user's effective role on a scope, resolved once per request
type Role string

const (
	RoleNone   Role = "none"
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleOwner  Role = "owner"
)

var roleRank = map[Role]int{
	RoleNone:   0,
	RoleViewer: 1,
	RoleEditor: 2,
	RoleOwner:  3,
}

// AtLeast reports whether the role grants at least the given minimum
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}

// Action is a gated operation on a scope or its contents
type Action string

const (
	ActionView                     Action = "view"
	ActionEditTask                 Action = "edit_task"
	ActionCompleteTask             Action = "complete_task"
	ActionEditOwnIntegrationConfig Action = "edit_own_integration_config"
	ActionDeleteTask               Action = "delete_task"
	ActionManageScope              Action = "manage_scope"
	ActionManageSharing            Action = "manage_sharing"
	ActionManageIntegrationFlag    Action = "manage_scope_integration_flag"
)

var minimumRole = map[Action]Role{
	ActionView:                     RoleViewer,
	ActionEditTask:                 RoleEditor,
	ActionCompleteTask:             RoleEditor,
	ActionEditOwnIntegrationConfig: RoleEditor,
	ActionDeleteTask:               RoleOwner,
	ActionManageScope:              RoleOwner,
	ActionManageSharing:            RoleOwner,
	ActionManageIntegrationFlag:    RoleOwner,
}

// Decision is the outcome of an authorization check. It carries no side
// effects; callers mutate state only after Allowed.
type Decision struct {
	Allowed bool
	Role    Role
	Reason  apperrors.DenyReason
}

// EffectiveRole resolves a user's role on a scope: owner wins, otherwise an
// accepted share's role, otherwise none. A pending or revoked share grants
// nothing.
func EffectiveRole(scope *models.Scope, share *models.ScopeShare, userID uuid.UUID) Role {
	if scope.IsOwner(userID) {
		return RoleOwner
	}
	if share == nil || share.ScopeID != scope.ID || share.UserID != userID {
		return RoleNone
	}
	if !share.IsActive() {
		return RoleNone
	}
	switch share.Role {
	case models.ShareRoleEditor:
		return RoleEditor
	case models.ShareRoleViewer:
		return RoleViewer
	}
	return RoleNone
}

// Authorize decides whether the user may perform the action on the scope.
// Pure: the share (if any) must already be loaded.
func Authorize(scope *models.Scope, share *models.ScopeShare, userID uuid.UUID, action Action) Decision {
	role := EffectiveRole(scope, share, userID)

	if role == RoleNone {
		reason := apperrors.DenyNotAMember
		if share != nil && share.ScopeID == scope.ID && share.UserID == userID && !share.IsActive() {
			reason = apperrors.DenyShareNotAccepted
		}
		return Decision{Allowed: false, Role: role, Reason: reason}
	}

	if !role.AtLeast(minimumRole[action]) {
		return Decision{Allowed: false, Role: role, Reason: apperrors.DenyInsufficientRole}
	}

	return Decision{Allowed: true, Role: role}
}

// AuthorizeConfig decides whether the user may manage the integration
// configuration row belonging to targetID. A participant of any accepted role
// always manages their own tuple; anyone else's row keeps the editor tier of
// the action table.
func AuthorizeConfig(scope *models.Scope, share *models.ScopeShare, userID, targetID uuid.UUID) Decision {
	if userID == targetID {
		return Authorize(scope, share, userID, ActionView)
	}
	return Authorize(scope, share, userID, ActionEditOwnIntegrationConfig)
}

// PermissionService loads the share roster and applies the gate. Every
// mutating entry point goes through here before touching state.
type PermissionService struct {
	shareRepo repository.ScopeShareRepositoryInterface
}

// NewPermissionService creates a new permission service
func NewPermissionService(shareRepo repository.ScopeShareRepositoryInterface) *PermissionService {
	return &PermissionService{shareRepo: shareRepo}
}

// Authorize resolves the user's share and gates the action. Returns the
// effective role on Allow and a PermissionDeniedError on Deny.
func (s *PermissionService) Authorize(scope *models.Scope, userID uuid.UUID, action Action) (Role, error) {
	share, err := s.loadShare(scope, userID)
	if err != nil {
		return RoleNone, err
	}

	decision := Authorize(scope, share, userID, action)
	if !decision.Allowed {
		return decision.Role, apperrors.NewPermissionDenied(decision.Reason)
	}
	return decision.Role, nil
}

// AuthorizeConfig resolves the user's share and gates access to targetID's
// configuration row, with the own-row exception applied.
func (s *PermissionService) AuthorizeConfig(scope *models.Scope, userID, targetID uuid.UUID) (Role, error) {
	share, err := s.loadShare(scope, userID)
	if err != nil {
		return RoleNone, err
	}

	decision := AuthorizeConfig(scope, share, userID, targetID)
	if !decision.Allowed {
		return decision.Role, apperrors.NewPermissionDenied(decision.Reason)
	}
	return decision.Role, nil
}

// loadShare fetches the user's share row; the owner never needs one
func (s *PermissionService) loadShare(scope *models.Scope, userID uuid.UUID) (*models.ScopeShare, error) {
	if scope.IsOwner(userID) {
		return nil, nil
	}
	found, err := s.shareRepo.GetByScopeAndUser(scope.ID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return found, nil
}
