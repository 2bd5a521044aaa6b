package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a scope-owned work item. The GitHub issue fields are written only by
// a successful sync and are never user-editable directly.
type Task struct {
	BaseModel
	ScopeID     uuid.UUID  `json:"scope_id" gorm:"type:uuid;not null;index" validate:"required"`
	OwnerID     uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string     `json:"name" gorm:"type:text;not null" validate:"required"`
	Description string     `json:"description" gorm:"type:text"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Rank        int        `json:"rank" gorm:"not null;default:0"`

	Completed     bool       `json:"completed" gorm:"not null;default:false"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`

	GitHubIssueID     *int64  `json:"github_issue_id,omitempty" gorm:"column:github_issue_id"`
	GitHubIssueNumber *int    `json:"github_issue_number,omitempty" gorm:"column:github_issue_number"`
	GitHubIssueURL    *string `json:"github_issue_url,omitempty" gorm:"column:github_issue_url;size:500"`
	GitHubIssueState  *string `json:"github_issue_state,omitempty" gorm:"column:github_issue_state;size:20"`

	// Relationships
	SyncLogs []SyncLog `json:"sync_logs,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// HasIssueLink reports whether this task is linked to a tracker issue
func (t *Task) HasIssueLink() bool {
	return t.GitHubIssueNumber != nil && *t.GitHubIssueNumber > 0
}

// Complete marks the task completed with a timestamp
func (t *Task) Complete(now time.Time) {
	t.Completed = true
	t.CompletedDate = &now
}

// Uncomplete reopens the task
func (t *Task) Uncomplete() {
	t.Completed = false
	t.CompletedDate = nil
}
