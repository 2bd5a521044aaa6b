package service

import (
	"errors"
	"strings"
	"unicode"

	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/repository"
)

// FallbackLabel is used when a scope name yields no usable slug
const FallbackLabel = "projectsmanager"

// DefaultLabel derives the scope's hidden label from its name: lowercase,
// punctuation dropped, spaces/underscores/hyphens collapsed to single hyphens.
func DefaultLabel(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '_' || r == '-':
			b.WriteRune(' ')
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "-")
	if slug == "" {
		return FallbackLabel
	}
	return slug
}

// LabelResolver maintains the scope-global hidden label: one label per scope,
// shared by every participant pointing at the repository it was generated
// against, independent otherwise. The label is sticky — once set it is never
// auto-cleared, even when no config targets its defining repository anymore.
type LabelResolver struct {
	scopeRepo  repository.ScopeRepositoryInterface
	configRepo repository.ScopeGitHubConfigRepositoryInterface
}

// NewLabelResolver creates a new label resolver
func NewLabelResolver(scopeRepo repository.ScopeRepositoryInterface, configRepo repository.ScopeGitHubConfigRepositoryInterface) *LabelResolver {
	return &LabelResolver{scopeRepo: scopeRepo, configRepo: configRepo}
}

// Resolve is invoked whenever a user sets or changes their repository
// selection. It returns the scope's hidden label and whether the given config
// currently shares its repository with another enabled participant (in which
// case the label must be reused on the tracker, never recreated).
//
// The first configurer claims the label through a compare-and-set on the
// scope version; a lost race is retried once against the fresh row before
// ErrLabelConflict surfaces.
func (r *LabelResolver) Resolve(scope *models.Scope, cfg *models.ScopeGitHubConfig) (string, bool, error) {
	label, err := r.ensureLabel(scope)
	if err != nil {
		return "", false, err
	}

	shared, err := r.sharesRepository(scope, cfg)
	if err != nil {
		return "", false, err
	}
	return label, shared, nil
}

func (r *LabelResolver) ensureLabel(scope *models.Scope) (string, error) {
	if scope.GitHubHiddenLabel != nil && *scope.GitHubHiddenLabel != "" {
		return *scope.GitHubHiddenLabel, nil
	}

	label := DefaultLabel(scope.Name)
	err := r.scopeRepo.ClaimHiddenLabel(scope.ID, label, scope.Version)
	if err == nil {
		scope.GitHubHiddenLabel = &label
		scope.Version++
		return label, nil
	}
	if !errors.Is(err, apperrors.ErrLabelConflict) {
		return "", err
	}

	// Lost the race: re-read once. The winner usually set the label already.
	fresh, err := r.scopeRepo.GetByID(scope.ID)
	if err != nil {
		return "", err
	}
	*scope = *fresh
	if scope.GitHubHiddenLabel != nil && *scope.GitHubHiddenLabel != "" {
		return *scope.GitHubHiddenLabel, nil
	}

	// Concurrent writer bumped the version without claiming the label
	// (integration flag toggle). One reapply against the fresh version.
	if err := r.scopeRepo.ClaimHiddenLabel(scope.ID, label, scope.Version); err != nil {
		return "", err
	}
	scope.GitHubHiddenLabel = &label
	scope.Version++
	return label, nil
}

// sharesRepository reports whether another enabled config of the scope points
// at the same repository as cfg. Disabled rows keep their fields but do not
// bind anyone to the shared label.
func (r *LabelResolver) sharesRepository(scope *models.Scope, cfg *models.ScopeGitHubConfig) (bool, error) {
	if cfg == nil || !cfg.HasRepository() {
		return false, nil
	}

	configs, err := r.configRepo.ListByScope(scope.ID)
	if err != nil {
		return false, err
	}
	for i := range configs {
		other := &configs[i]
		if other.UserID == cfg.UserID {
			continue
		}
		if other.Enabled && cfg.SharesRepositoryWith(other) {
			return true, nil
		}
	}
	return false, nil
}
