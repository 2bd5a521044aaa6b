package models

import (
	"github.com/google/uuid"
)

// SyncLog is an append-only record of one outbound sync attempt for a task.
// Task mutations always succeed independently of tracker reachability; the
// latest log entry is what the UI surfaces as the task's sync status.
type SyncLog struct {
	BaseModel
	TaskID    uuid.UUID  `json:"task_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Operation string     `json:"operation" gorm:"size:40;not null" validate:"required"`
	Status    SyncStatus `json:"status" gorm:"size:20;not null" validate:"required,oneof=ok pending failed skipped"`
	Detail    string     `json:"detail" gorm:"size:500"`
}

// TableName returns the table name for SyncLog
func (SyncLog) TableName() string {
	return "sync_logs"
}
