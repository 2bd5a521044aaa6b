package repository

import (
	"projects-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScopeShareRepository handles database operations for the sharing roster
type ScopeShareRepository struct {
	db *gorm.DB
}

// NewScopeShareRepository creates a new scope share repository
func NewScopeShareRepository(db *gorm.DB) *ScopeShareRepository {
	return &ScopeShareRepository{db: db}
}

// Create creates a new share. The (scope_id, user_id) unique index rejects duplicates.
func (r *ScopeShareRepository) Create(share *models.ScopeShare) error {
	return r.db.Create(share).Error
}

// GetByScopeAndUser retrieves the share for a (scope, user) pair
func (r *ScopeShareRepository) GetByScopeAndUser(scopeID, userID uuid.UUID) (*models.ScopeShare, error) {
	var share models.ScopeShare
	err := r.db.First(&share, "scope_id = ? AND user_id = ?", scopeID, userID).Error
	if err != nil {
		return nil, err
	}
	return &share, nil
}

// ListByScope retrieves the full roster for a scope
func (r *ScopeShareRepository) ListByScope(scopeID uuid.UUID) ([]models.ScopeShare, error) {
	var shares []models.ScopeShare
	err := r.db.Where("scope_id = ?", scopeID).Order("created_at").Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

// ListForUser retrieves a user's shares filtered by status
func (r *ScopeShareRepository) ListForUser(userID uuid.UUID, status models.ShareStatus) ([]models.ScopeShare, error) {
	var shares []models.ScopeShare
	query := r.db.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at").Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

// Update updates a share
func (r *ScopeShareRepository) Update(share *models.ScopeShare) error {
	return r.db.Save(share).Error
}

// Delete deletes a share
func (r *ScopeShareRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ScopeShare{}, "id = ?", id).Error
}
