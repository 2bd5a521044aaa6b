package models

import (
	"strings"

	"github.com/google/uuid"
)

// ScopeGitHubConfig is a personal integration record for one (scope, user)
// pair: encrypted credential, tracker selections and the enabled flag. It
// exists independently of the sharing roster; the owner holds a row keyed the
// same way. Disabling never clears the selection fields.
type ScopeGitHubConfig struct {
	BaseModel
	ScopeID uuid.UUID `json:"scope_id" gorm:"type:uuid;not null;uniqueIndex:uq_scope_github_config_scope_user;index" validate:"required"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_scope_github_config_scope_user;index" validate:"required"`

	EncryptedToken []byte `json:"-" gorm:"type:bytea"`
	Enabled        bool   `json:"enabled" gorm:"not null;default:false"`

	RepoID    *int64  `json:"repo_id,omitempty" gorm:"column:github_repo_id"`
	RepoOwner *string `json:"repo_owner,omitempty" gorm:"column:github_repo_owner;size:200"`
	RepoName  *string `json:"repo_name,omitempty" gorm:"column:github_repo_name;size:200"`

	ProjectID   *string `json:"project_id,omitempty" gorm:"column:github_project_id;size:100"`
	ProjectName *string `json:"project_name,omitempty" gorm:"column:github_project_name;size:200"`

	MilestoneNumber *int    `json:"milestone_number,omitempty" gorm:"column:github_milestone_number"`
	MilestoneTitle  *string `json:"milestone_title,omitempty" gorm:"column:github_milestone_title;size:200"`
}

// TableName returns the table name for ScopeGitHubConfig
func (ScopeGitHubConfig) TableName() string {
	return "scope_github_configs"
}

// HasRepository reports whether a repository has been selected
func (c *ScopeGitHubConfig) HasRepository() bool {
	return c.RepoOwner != nil && *c.RepoOwner != "" && c.RepoName != nil && *c.RepoName != ""
}

// HasToken reports whether a credential is stored
func (c *ScopeGitHubConfig) HasToken() bool {
	return len(c.EncryptedToken) > 0
}

// SharesRepositoryWith reports whether both configs reference the same GitHub
// repository. Numeric ids win when both sides carry one; otherwise owner/name
// compare case-insensitively.
func (c *ScopeGitHubConfig) SharesRepositoryWith(other *ScopeGitHubConfig) bool {
	if other == nil || !c.HasRepository() || !other.HasRepository() {
		return false
	}
	if c.RepoID != nil && other.RepoID != nil {
		return *c.RepoID == *other.RepoID
	}
	return strings.EqualFold(*c.RepoOwner, *other.RepoOwner) &&
		strings.EqualFold(*c.RepoName, *other.RepoName)
}
