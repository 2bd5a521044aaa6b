package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/logger"
	"projects-manager-backend/internal/repository"
	"projects-manager-backend/internal/vault"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateConfigRequest represents the payload for updating one's own
// integration configuration. All fields are optional; absent fields keep
// their stored value.
type UpdateConfigRequest struct {
	Token   *string `json:"token,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`

	RepoID    *int64  `json:"repo_id,omitempty"`
	RepoOwner *string `json:"repo_owner,omitempty" validate:"omitempty,max=200"`
	RepoName  *string `json:"repo_name,omitempty" validate:"omitempty,max=200"`

	ProjectID   *string `json:"project_id,omitempty" validate:"omitempty,max=100"`
	ProjectName *string `json:"project_name,omitempty" validate:"omitempty,max=200"`

	MilestoneNumber *int    `json:"milestone_number,omitempty"`
	MilestoneTitle  *string `json:"milestone_title,omitempty" validate:"omitempty,max=200"`
}

// ConfigResponse is the canonical configuration serialization. The credential
// itself never appears; TokenSet reports its presence.
type ConfigResponse struct {
	ScopeID  uuid.UUID `json:"scope_id"`
	UserID   uuid.UUID `json:"user_id"`
	Enabled  bool      `json:"enabled"`
	TokenSet bool      `json:"token_set"`

	RepoID    *int64  `json:"repo_id,omitempty"`
	RepoOwner *string `json:"repo_owner,omitempty"`
	RepoName  *string `json:"repo_name,omitempty"`

	ProjectID   *string `json:"project_id,omitempty"`
	ProjectName *string `json:"project_name,omitempty"`

	MilestoneNumber *int    `json:"milestone_number,omitempty"`
	MilestoneTitle  *string `json:"milestone_title,omitempty"`

	HiddenLabel      *string `json:"hidden_label,omitempty"`
	SharesRepository bool    `json:"shares_repository"`
}

// ConfigService manages per-user integration configurations. Each participant
// edits only their own row; the scope owner has no read or write access to
// anyone else's credential or selections.
type ConfigService struct {
	scopeRepo   repository.ScopeRepositoryInterface
	configRepo  repository.ScopeGitHubConfigRepositoryInterface
	permissions *PermissionService
	resolver    *LabelResolver
	capability  *SyncCapabilityController
	vault       *vault.Vault
	github      GitHubServiceInterface
	validator   *validator.Validate
	log         *logger.Logger
}

// NewConfigService creates a new config service
func NewConfigService(
	scopeRepo repository.ScopeRepositoryInterface,
	configRepo repository.ScopeGitHubConfigRepositoryInterface,
	permissions *PermissionService,
	resolver *LabelResolver,
	capability *SyncCapabilityController,
	v *vault.Vault,
	github GitHubServiceInterface,
) *ConfigService {
	return &ConfigService{
		scopeRepo:   scopeRepo,
		configRepo:  configRepo,
		permissions: permissions,
		resolver:    resolver,
		capability:  capability,
		vault:       v,
		github:      github,
		validator:   validator.New(),
		log:         logger.New().WithField("component", "config_service"),
	}
}

// GetOwnConfig returns the acting user's configuration for the scope. A user
// with no row yet gets an empty, disabled configuration rather than an error.
func (s *ConfigService) GetOwnConfig(scopeID, userID uuid.UUID) (*ConfigResponse, error) {
	scope, _, err := s.authorizeScope(scopeID, userID, ActionView)
	if err != nil {
		return nil, err
	}

	cfg, err := s.configRepo.GetByScopeAndUser(scopeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ConfigResponse{ScopeID: scopeID, UserID: userID, HiddenLabel: scope.GitHubHiddenLabel}, nil
		}
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return s.toResponse(scope, cfg), nil
}

// UpdateOwnConfig upserts the acting user's configuration. A repository change
// runs label resolution: the scope's hidden label is derived once, then every
// later configurer reuses it. Setting an empty token is rejected; omitting the
// token keeps the stored one.
func (s *ConfigService) UpdateOwnConfig(ctx context.Context, scopeID, userID uuid.UUID, req *UpdateConfigRequest) (*ConfigResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Token != nil && strings.TrimSpace(*req.Token) == "" {
		return nil, apperrors.ErrEmptyToken
	}

	scope, err := s.authorizeOwnConfig(scopeID, userID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.configRepo.GetByScopeAndUserForUpdate(scopeID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	created := false
	if cfg == nil {
		cfg = &models.ScopeGitHubConfig{ScopeID: scopeID, UserID: userID}
		created = true
	}

	if req.Token != nil {
		encrypted, err := s.vault.Encrypt(*req.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt token: %w", err)
		}
		cfg.EncryptedToken = encrypted
	}
	if req.Enabled != nil {
		cfg.Enabled = *req.Enabled
	}

	repoChanged := s.applyRepositorySelection(cfg, req)

	if req.ProjectID != nil {
		cfg.ProjectID = nilIfEmpty(req.ProjectID)
		cfg.ProjectName = nilIfEmpty(req.ProjectName)
	}
	if req.MilestoneNumber != nil {
		cfg.MilestoneNumber = req.MilestoneNumber
		cfg.MilestoneTitle = nilIfEmpty(req.MilestoneTitle)
	}

	if created {
		err = s.configRepo.Create(cfg)
	} else {
		err = s.configRepo.Update(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}

	shared := false
	if repoChanged && cfg.HasRepository() {
		label, sharedRepo, err := s.resolver.Resolve(scope, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve hidden label: %w", err)
		}
		shared = sharedRepo

		// Best effort: put the label on the tracker now so the first synced
		// issue does not have to. Only a ready tuple may talk to the tracker;
		// a disabled or incomplete one defers to the first ready sync.
		// Failures are logged, never surfaced.
		if capability := s.capability.Evaluate(scope, cfg); capability.Ready() {
			if gerr := s.github.EnsureLabel(ctx, capability.Token, *cfg.RepoOwner, *cfg.RepoName, label); gerr != nil {
				s.log.WithError(gerr).WithField("scope_id", scopeID).Warn("failed to ensure hidden label on repository")
			}
		}
	}

	resp := s.toResponse(scope, cfg)
	resp.SharesRepository = resp.SharesRepository || shared
	return resp, nil
}

// ClearToken removes the acting user's stored credential. The rest of the
// configuration survives; sync for this user degrades to credential_unavailable.
func (s *ConfigService) ClearToken(scopeID, userID uuid.UUID) (*ConfigResponse, error) {
	scope, err := s.authorizeOwnConfig(scopeID, userID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.configRepo.GetByScopeAndUserForUpdate(scopeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.EncryptedToken = nil
	if err := s.configRepo.Update(cfg); err != nil {
		return nil, fmt.Errorf("failed to clear token: %w", err)
	}
	return s.toResponse(scope, cfg), nil
}

// TestConnection verifies the acting user's stored credential against the API
func (s *ConfigService) TestConnection(ctx context.Context, scopeID, userID uuid.UUID) error {
	token, _, err := s.outboundToken(scopeID, userID, false)
	if err != nil {
		return err
	}
	return s.github.TestConnection(ctx, token)
}

// ListRepositories lists repositories visible to the acting user's credential
func (s *ConfigService) ListRepositories(ctx context.Context, scopeID, userID uuid.UUID) ([]RepositorySelection, error) {
	token, _, err := s.outboundToken(scopeID, userID, false)
	if err != nil {
		return nil, err
	}
	return s.github.ListRepositories(ctx, token)
}

// ListProjects lists classic projects of the selected repository
func (s *ConfigService) ListProjects(ctx context.Context, scopeID, userID uuid.UUID) ([]ProjectSelection, error) {
	token, cfg, err := s.outboundToken(scopeID, userID, true)
	if err != nil {
		return nil, err
	}
	return s.github.ListProjects(ctx, token, *cfg.RepoOwner, *cfg.RepoName)
}

// ListMilestones lists milestones of the selected repository
func (s *ConfigService) ListMilestones(ctx context.Context, scopeID, userID uuid.UUID) ([]MilestoneSelection, error) {
	token, cfg, err := s.outboundToken(scopeID, userID, true)
	if err != nil {
		return nil, err
	}
	return s.github.ListMilestones(ctx, token, *cfg.RepoOwner, *cfg.RepoName)
}

// applyRepositorySelection writes the repository fields and reports whether
// the selection actually changed. Changing repositories drops the project and
// milestone selections, which belong to the old repository.
func (s *ConfigService) applyRepositorySelection(cfg *models.ScopeGitHubConfig, req *UpdateConfigRequest) bool {
	if req.RepoOwner == nil && req.RepoName == nil && req.RepoID == nil {
		return false
	}

	incoming := &models.ScopeGitHubConfig{
		RepoID:    req.RepoID,
		RepoOwner: req.RepoOwner,
		RepoName:  req.RepoName,
	}
	if cfg.HasRepository() && incoming.HasRepository() && cfg.SharesRepositoryWith(incoming) {
		// Same repository restated; keep selections
		cfg.RepoID = req.RepoID
		return false
	}

	cfg.RepoID = req.RepoID
	cfg.RepoOwner = nilIfEmpty(req.RepoOwner)
	cfg.RepoName = nilIfEmpty(req.RepoName)
	cfg.ProjectID = nil
	cfg.ProjectName = nil
	cfg.MilestoneNumber = nil
	cfg.MilestoneTitle = nil
	return cfg.HasRepository()
}

// outboundToken walks the capability checks in evaluation order and returns
// the decrypted credential for an immediate call. The repository listing
// endpoints exist to pick a repository, so they skip that check; everything
// else evaluates the full chain.
func (s *ConfigService) outboundToken(scopeID, userID uuid.UUID, requireRepository bool) (string, *models.ScopeGitHubConfig, error) {
	scope, err := s.authorizeOwnConfig(scopeID, userID)
	if err != nil {
		return "", nil, err
	}

	cfg, err := s.configRepo.GetByScopeAndUser(scopeID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if requireRepository {
		capability := s.capability.Evaluate(scope, cfg)
		if !capability.Ready() {
			return "", nil, capability.Err()
		}
		return capability.Token, cfg, nil
	}

	if !scope.GitHubIntegrationEnabled || cfg == nil || !cfg.Enabled {
		return "", nil, apperrors.NewSyncNotReady(apperrors.SyncDisabled)
	}
	if !cfg.HasToken() {
		return "", nil, apperrors.NewSyncNotReady(apperrors.SyncCredentialUnavailable)
	}
	token, err := s.vault.Decrypt(cfg.EncryptedToken)
	if err != nil || token == "" {
		return "", nil, apperrors.NewSyncNotReady(apperrors.SyncCredentialUnavailable)
	}
	return token, cfg, nil
}

// authorizeOwnConfig gates access to the acting user's own configuration row:
// any accepted participant manages their own tuple, whatever their role.
func (s *ConfigService) authorizeOwnConfig(scopeID, userID uuid.UUID) (*models.Scope, error) {
	scope, err := s.scopeRepo.GetByID(scopeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScopeNotFound
		}
		return nil, fmt.Errorf("failed to load scope: %w", err)
	}

	if _, err := s.permissions.AuthorizeConfig(scope, userID, userID); err != nil {
		return nil, err
	}
	return scope, nil
}

func (s *ConfigService) authorizeScope(scopeID, userID uuid.UUID, action Action) (*models.Scope, Role, error) {
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

func (s *ConfigService) toResponse(scope *models.Scope, cfg *models.ScopeGitHubConfig) *ConfigResponse {
	resp := &ConfigResponse{
		ScopeID:         cfg.ScopeID,
		UserID:          cfg.UserID,
		Enabled:         cfg.Enabled,
		TokenSet:        cfg.HasToken(),
		RepoID:          cfg.RepoID,
		RepoOwner:       cfg.RepoOwner,
		RepoName:        cfg.RepoName,
		ProjectID:       cfg.ProjectID,
		ProjectName:     cfg.ProjectName,
		MilestoneNumber: cfg.MilestoneNumber,
		MilestoneTitle:  cfg.MilestoneTitle,
		HiddenLabel:     scope.GitHubHiddenLabel,
	}
	if cfg.HasRepository() {
		if shared, err := s.resolver.sharesRepository(scope, cfg); err == nil {
			resp.SharesRepository = shared
		}
	}
	return resp
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
