package models

import (
	"github.com/google/uuid"
)

// Notification is a user-facing message emitted on share lifecycle events
type Notification struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	ScopeID *uuid.UUID       `json:"scope_id,omitempty" gorm:"type:uuid;index"`
	Kind    NotificationKind `json:"kind" gorm:"size:40;not null" validate:"required"`
	Message string           `json:"message" gorm:"size:500;not null" validate:"required"`
	Read    bool             `json:"read" gorm:"not null;default:false"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
