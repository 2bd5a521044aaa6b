package models

import (
	"github.com/google/uuid"
)

// Scope is a shared project container owning tasks, the sharing roster and
// per-user GitHub configurations. The owner is implicit via OwnerID and never
// appears in the roster.
type Scope struct {
	BaseModel
	Name        string    `json:"name" gorm:"size:80;not null" validate:"required,min=1,max=80"`
	Description string    `json:"description" gorm:"type:text"`
	Rank        int       `json:"rank" gorm:"not null;default:1"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`

	// GitHubIntegrationEnabled is the scope-level gate. When false, no
	// participant may issue tracker calls regardless of personal flags.
	GitHubIntegrationEnabled bool `json:"github_integration_enabled" gorm:"not null;default:false"`

	// GitHubHiddenLabel marks synced issues on the tracker. Written only by
	// the label resolver, never by end-user input.
	GitHubHiddenLabel *string `json:"github_hidden_label,omitempty" gorm:"size:200"`

	// Version backs the compare-and-set used when claiming the hidden label.
	Version int `json:"-" gorm:"not null;default:0"`

	// Relationships
	Shares  []ScopeShare        `json:"shares,omitempty" gorm:"foreignKey:ScopeID;constraint:OnDelete:CASCADE"`
	Configs []ScopeGitHubConfig `json:"configs,omitempty" gorm:"foreignKey:ScopeID;constraint:OnDelete:CASCADE"`
	Tasks   []Task              `json:"tasks,omitempty" gorm:"foreignKey:ScopeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Scope
func (Scope) TableName() string {
	return "scopes"
}

// IsOwner reports whether the given user owns this scope
func (s *Scope) IsOwner(userID uuid.UUID) bool {
	return s.OwnerID == userID
}
