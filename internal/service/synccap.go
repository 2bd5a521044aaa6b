package service

import (
	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/vault"
)

// SyncState is the derived sync capability of one (scope, user) tuple at one
// moment. It is recomputed on every sync-eligible action and never persisted
// beyond the two stored flags.
type SyncState string

const (
	SyncStateDisabled     SyncState = "disabled"
	SyncStateUnconfigured SyncState = "unconfigured"
	SyncStateReady        SyncState = "ready"
)

// SyncCapability is the result of one evaluation. Token is populated only in
// the ready state; callers use it for the immediate outbound call and must
// not retain it.
type SyncCapability struct {
	State    SyncState
	Substate apperrors.SyncSubstate
	Token    string
}

// Ready reports whether an outbound tracker call is permitted right now
func (c SyncCapability) Ready() bool {
	return c.State == SyncStateReady
}

// Err returns the SyncNotReadyError matching a non-ready capability
func (c SyncCapability) Err() error {
	if c.Ready() {
		return nil
	}
	return apperrors.NewSyncNotReady(c.Substate)
}

// SyncCapabilityController decides, per evaluation, whether an outbound
// tracker call is permitted for a (scope, user) tuple.
type SyncCapabilityController struct {
	vault *vault.Vault
}

// NewSyncCapabilityController creates a new controller
func NewSyncCapabilityController(v *vault.Vault) *SyncCapabilityController {
	return &SyncCapabilityController{vault: v}
}

// Evaluate runs the four checks in order; the first failure names the
// reported substate and no network call may happen unless all pass.
// The scope-level flag outranks the per-user flag: when it is off, every
// tuple of the scope is disabled no matter what the user configured.
func (c *SyncCapabilityController) Evaluate(scope *models.Scope, cfg *models.ScopeGitHubConfig) SyncCapability {
	if !scope.GitHubIntegrationEnabled {
		return SyncCapability{State: SyncStateDisabled, Substate: apperrors.SyncDisabled}
	}
	if cfg == nil || !cfg.Enabled {
		return SyncCapability{State: SyncStateDisabled, Substate: apperrors.SyncDisabled}
	}
	if !cfg.HasRepository() {
		return SyncCapability{State: SyncStateUnconfigured, Substate: apperrors.SyncNotConfigured}
	}
	if !cfg.HasToken() {
		return SyncCapability{State: SyncStateUnconfigured, Substate: apperrors.SyncCredentialUnavailable}
	}

	token, err := c.vault.Decrypt(cfg.EncryptedToken)
	if err != nil || token == "" {
		return SyncCapability{State: SyncStateUnconfigured, Substate: apperrors.SyncCredentialUnavailable}
	}

	return SyncCapability{State: SyncStateReady, Token: token}
}
