package repository

import (
	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScopeRepository handles database operations for scopes
type ScopeRepository struct {
	db *gorm.DB
}

// NewScopeRepository creates a new scope repository
func NewScopeRepository(db *gorm.DB) *ScopeRepository {
	return &ScopeRepository{db: db}
}

// Create creates a new scope
func (r *ScopeRepository) Create(scope *models.Scope) error {
	return r.db.Create(scope).Error
}

// GetByID retrieves a scope by ID
func (r *ScopeRepository) GetByID(id uuid.UUID) (*models.Scope, error) {
	var scope models.Scope
	err := r.db.First(&scope, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &scope, nil
}

// Update updates a scope
func (r *ScopeRepository) Update(scope *models.Scope) error {
	return r.db.Save(scope).Error
}

// Delete deletes a scope. Shares, configs and tasks cascade at the database level.
func (r *ScopeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Scope{}, "id = ?", id).Error
}

// ListForUser retrieves scopes the user owns or participates in through an
// accepted share, ordered by rank.
func (r *ScopeRepository) ListForUser(userID uuid.UUID) ([]models.Scope, error) {
	var scopes []models.Scope
	err := r.db.
		Joins("LEFT JOIN scope_shares ON scope_shares.scope_id = scopes.id AND scope_shares.user_id = ? AND scope_shares.status = ?",
			userID, models.ShareStatusAccepted).
		Where("scopes.owner_id = ? OR scope_shares.id IS NOT NULL", userID).
		Order("scopes.rank, scopes.created_at").
		Find(&scopes).Error
	if err != nil {
		return nil, err
	}
	return scopes, nil
}

// NextRank returns the next rank value for a new scope
func (r *ScopeRepository) NextRank() (int, error) {
	var maxRank *int
	err := r.db.Model(&models.Scope{}).Select("MAX(rank)").Scan(&maxRank).Error
	if err != nil {
		return 0, err
	}
	if maxRank == nil {
		return 1, nil
	}
	return *maxRank + 1, nil
}

// SetIntegrationEnabled flips the scope-level integration flag. Per-user
// configuration rows are untouched so re-enabling restores prior capability.
func (r *ScopeRepository) SetIntegrationEnabled(scopeID uuid.UUID, enabled bool) error {
	result := r.db.Model(&models.Scope{}).
		Where("id = ?", scopeID).
		Update("github_integration_enabled", enabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClaimHiddenLabel sets the hidden label with a compare-and-set on the scope
// version column. A zero-row update means another claimer won the race.
func (r *ScopeRepository) ClaimHiddenLabel(scopeID uuid.UUID, label string, expectedVersion int) error {
	result := r.db.Model(&models.Scope{}).
		Where("id = ? AND version = ?", scopeID, expectedVersion).
		Updates(map[string]interface{}{
			"github_hidden_label": label,
			"version":             gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrLabelConflict
	}
	return nil
}
