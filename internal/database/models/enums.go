package models

// ShareRole defines the role granted to a collaborator on a shared scope
type ShareRole string

const (
	ShareRoleViewer ShareRole = "viewer"
	ShareRoleEditor ShareRole = "editor"
)

// IsValid checks if the ShareRole is valid
func (r ShareRole) IsValid() bool {
	switch r {
	case ShareRoleViewer, ShareRoleEditor:
		return true
	}
	return false
}

// ShareStatus defines the lifecycle status of a share invitation
type ShareStatus string

const (
	ShareStatusPending  ShareStatus = "pending"
	ShareStatusAccepted ShareStatus = "accepted"
	ShareStatusRevoked  ShareStatus = "revoked"
	ShareStatusRejected ShareStatus = "rejected"
)

// IsValid checks if the ShareStatus is valid
func (s ShareStatus) IsValid() bool {
	switch s {
	case ShareStatusPending, ShareStatusAccepted, ShareStatusRevoked, ShareStatusRejected:
		return true
	}
	return false
}

// SyncStatus defines the outcome of a single sync attempt against the tracker
type SyncStatus string

const (
	SyncStatusOK      SyncStatus = "ok"
	SyncStatusPending SyncStatus = "pending"
	SyncStatusFailed  SyncStatus = "failed"
	SyncStatusSkipped SyncStatus = "skipped"
)

// NotificationKind classifies user notifications
type NotificationKind string

const (
	NotificationShareInvited  NotificationKind = "share_invited"
	NotificationShareAccepted NotificationKind = "share_accepted"
	NotificationShareRejected NotificationKind = "share_rejected"
	NotificationShareRevoked  NotificationKind = "share_revoked"
)
