package repository

import (
	"projects-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScopeGitHubConfigRepository handles database operations for per-user
// integration configuration rows
type ScopeGitHubConfigRepository struct {
	db *gorm.DB
}

// NewScopeGitHubConfigRepository creates a new config repository
func NewScopeGitHubConfigRepository(db *gorm.DB) *ScopeGitHubConfigRepository {
	return &ScopeGitHubConfigRepository{db: db}
}

// Create creates a new config row. The (scope_id, user_id) unique index
// guarantees at most one row per participant.
func (r *ScopeGitHubConfigRepository) Create(config *models.ScopeGitHubConfig) error {
	return r.db.Create(config).Error
}

// GetByScopeAndUser retrieves the config for a (scope, user) pair
func (r *ScopeGitHubConfigRepository) GetByScopeAndUser(scopeID, userID uuid.UUID) (*models.ScopeGitHubConfig, error) {
	var config models.ScopeGitHubConfig
	err := r.db.First(&config, "scope_id = ? AND user_id = ?", scopeID, userID).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// GetByScopeAndUserForUpdate retrieves the config with a row lock so that one
// user's concurrent writes to the same row serialize.
func (r *ScopeGitHubConfigRepository) GetByScopeAndUserForUpdate(scopeID, userID uuid.UUID) (*models.ScopeGitHubConfig, error) {
	var config models.ScopeGitHubConfig
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&config, "scope_id = ? AND user_id = ?", scopeID, userID).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// ListByScope retrieves all participants' configs for a scope
func (r *ScopeGitHubConfigRepository) ListByScope(scopeID uuid.UUID) ([]models.ScopeGitHubConfig, error) {
	var configs []models.ScopeGitHubConfig
	err := r.db.Where("scope_id = ?", scopeID).Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}

// Update updates a config row
func (r *ScopeGitHubConfigRepository) Update(config *models.ScopeGitHubConfig) error {
	return r.db.Save(config).Error
}

// Delete deletes a config row
func (r *ScopeGitHubConfigRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ScopeGitHubConfig{}, "id = ?", id).Error
}
