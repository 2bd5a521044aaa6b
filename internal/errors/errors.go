package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// DenyReason tags why the permission gate refused an action
type DenyReason string

const (
	DenyNotAMember       DenyReason = "not_a_member"
	DenyShareNotAccepted DenyReason = "share_not_accepted"
	DenyInsufficientRole DenyReason = "insufficient_role"
)

// PermissionDeniedError is the ordinary outcome of an unauthorized action.
// It is regular control flow, not an exceptional condition.
type PermissionDeniedError struct {
	Reason DenyReason
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Reason)
}

// Is enables errors.Is() comparison for PermissionDeniedError
func (e *PermissionDeniedError) Is(target error) bool {
	t, ok := target.(*PermissionDeniedError)
	if !ok {
		return false
	}
	return t.Reason == "" || e.Reason == t.Reason
}

// SyncSubstate names the first failing check of a sync capability evaluation
type SyncSubstate string

const (
	SyncDisabled              SyncSubstate = "disabled"
	SyncNotConfigured         SyncSubstate = "not_configured"
	SyncCredentialUnavailable SyncSubstate = "credential_unavailable"
)

// SyncNotReadyError reports that a sync-eligible action could not reach the
// tracker. Surfaced as a task-level sync status, never as a mutation failure.
type SyncNotReadyError struct {
	Substate SyncSubstate
}

func (e *SyncNotReadyError) Error() string {
	return fmt.Sprintf("sync not ready: %s", e.Substate)
}

// Is enables errors.Is() comparison for SyncNotReadyError
func (e *SyncNotReadyError) Is(target error) bool {
	t, ok := target.(*SyncNotReadyError)
	if !ok {
		return false
	}
	return t.Substate == "" || e.Substate == t.Substate
}

// ExternalServiceError wraps a failed tracker call. Transient failures
// (network, 5xx) are retried with backoff; permanent ones (401/403/404) are
// never retried.
type ExternalServiceError struct {
	Status    int
	Transient bool
	Message   string
}

func (e *ExternalServiceError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("github: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("github: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrScopeNotFound        = &NotFoundError{Entity: "scope"}
	ErrShareNotFound        = &NotFoundError{Entity: "scope share"}
	ErrConfigNotFound       = &NotFoundError{Entity: "github configuration"}
	ErrTaskNotFound         = &NotFoundError{Entity: "task"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
)

// Already Exists Errors
var (
	ErrUserExists  = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrShareExists = &AlreadyExistsError{Entity: "scope share", Context: "for this user"}
)

// Business Logic Errors
var (
	// ErrLabelConflict reports a lost compare-and-set race while claiming the
	// scope hidden label. Retried once internally before surfacing.
	ErrLabelConflict = errors.New("hidden label claim lost a concurrent update")

	// ErrDecryptFailure means the stored credential cannot be recovered
	// (corrupt ciphertext or rotated key). Never retried; the user must
	// re-enter a token.
	ErrDecryptFailure = errors.New("stored credential cannot be decrypted")

	ErrEmptyToken          = errors.New("token must not be empty")
	ErrCannotShareWithSelf = errors.New("scope cannot be shared with its owner")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsPermissionDenied checks if an error is a PermissionDeniedError
func IsPermissionDenied(err error) bool {
	var deniedErr *PermissionDeniedError
	return errors.As(err, &deniedErr)
}

// IsSyncNotReady checks if an error is a SyncNotReadyError
func IsSyncNotReady(err error) bool {
	var notReadyErr *SyncNotReadyError
	return errors.As(err, &notReadyErr)
}

// NewPermissionDenied creates a PermissionDeniedError with the given reason
func NewPermissionDenied(reason DenyReason) error {
	return &PermissionDeniedError{Reason: reason}
}

// NewSyncNotReady creates a SyncNotReadyError for the given substate
func NewSyncNotReady(substate SyncSubstate) error {
	return &SyncNotReadyError{Substate: substate}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
