package models

import (
	"github.com/google/uuid"
)

// ScopeShare links a scope to a collaborating user with a role and an
// invitation status. Unique per (scope, user); the owner is never a row here.
type ScopeShare struct {
	BaseModel
	ScopeID   uuid.UUID   `json:"scope_id" gorm:"type:uuid;not null;uniqueIndex:uq_scope_share_user;index" validate:"required"`
	UserID    uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_scope_share_user;index" validate:"required"`
	InviterID *uuid.UUID  `json:"inviter_id,omitempty" gorm:"type:uuid;index"`
	Role      ShareRole   `json:"role" gorm:"size:20;not null;default:'editor'" validate:"required,oneof=viewer editor"`
	Status    ShareStatus `json:"status" gorm:"size:20;not null;default:'pending'" validate:"required,oneof=pending accepted revoked rejected"`
}

// TableName returns the table name for ScopeShare
func (ScopeShare) TableName() string {
	return "scope_shares"
}

// IsActive is true when the share grants access to the scope
func (s *ScopeShare) IsActive() bool {
	return s.Status == ShareStatusAccepted
}
