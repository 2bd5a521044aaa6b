package handlers

import (
	"net/http"

	"projects-manager-backend/internal/auth"
	"projects-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListNotifications handles GET /notifications
// @Summary List notifications
// @Description List the authenticated user's notifications, newest first
// @Tags notifications
// @Accept json
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Success 200 {array} service.NotificationResponse "Successfully retrieved notifications"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	unreadOnly := c.Query("unread") == "true"
	notifications, err := h.notificationService.ListNotifications(userID, unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead handles PUT /notifications/:id/read
// @Summary Mark notification read
// @Description Acknowledge one of the authenticated user's notifications
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 204 "Successfully marked read"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	notificationID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(notificationID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
