package repository

import (
	"errors"

	"projects-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyncLogRepository handles database operations for sync audit records
type SyncLogRepository struct {
	db *gorm.DB
}

// NewSyncLogRepository creates a new sync log repository
func NewSyncLogRepository(db *gorm.DB) *SyncLogRepository {
	return &SyncLogRepository{db: db}
}

// Create appends a sync log entry
func (r *SyncLogRepository) Create(log *models.SyncLog) error {
	return r.db.Create(log).Error
}

// GetLatestForTask retrieves the newest sync log of a task, or nil when the
// task has never been synced.
func (r *SyncLogRepository) GetLatestForTask(taskID uuid.UUID) (*models.SyncLog, error) {
	var log models.SyncLog
	err := r.db.Where("task_id = ?", taskID).Order("created_at DESC").First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// ListByTask retrieves all sync logs of a task, newest first
func (r *SyncLogRepository) ListByTask(taskID uuid.UUID) ([]models.SyncLog, error) {
	var logs []models.SyncLog
	err := r.db.Where("task_id = ?", taskID).Order("created_at DESC").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
