package service

import (
	"errors"
	"fmt"

	"projects-manager-backend/internal/database/models"
	apperrors "projects-manager-backend/internal/errors"
	"projects-manager-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationResponse is the canonical notification serialization
type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	ScopeID   *uuid.UUID              `json:"scope_id,omitempty"`
	Kind      models.NotificationKind `json:"kind"`
	Message   string                  `json:"message"`
	Read      bool                    `json:"read"`
	CreatedAt string                  `json:"created_at"`
}

// NotificationService lists and acknowledges a user's notifications
type NotificationService struct {
	notificationRepo repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// ListNotifications returns the user's notifications, newest first
func (s *NotificationService) ListNotifications(userID uuid.UUID, unreadOnly bool) ([]NotificationResponse, error) {
	notifications, err := s.notificationRepo.ListForUser(userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, NotificationResponse{
			ID:        notifications[i].ID,
			ScopeID:   notifications[i].ScopeID,
			Kind:      notifications[i].Kind,
			Message:   notifications[i].Message,
			Read:      notifications[i].Read,
			CreatedAt: notifications[i].CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return responses, nil
}

// MarkRead acknowledges one notification. Only the recipient may do so.
func (s *NotificationService) MarkRead(notificationID, userID uuid.UUID) error {
	notification, err := s.notificationRepo.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to load notification: %w", err)
	}
	if notification.UserID != userID {
		return apperrors.ErrNotificationNotFound
	}

	if err := s.notificationRepo.MarkRead(notificationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
