package handlers

import (
	"net/http"

	"projects-manager-backend/internal/auth"
	"projects-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShareHandler handles HTTP requests for the scope sharing roster
type ShareHandler struct {
	scopeService service.ScopeServiceInterface
}

// NewShareHandler creates a new share handler
func NewShareHandler(scopeService service.ScopeServiceInterface) *ShareHandler {
	return &ShareHandler{
		scopeService: scopeService,
	}
}

// InviteShare handles POST /scopes/:id/shares
// @Summary Invite a collaborator
// @Description Invite a user by email to the scope roster (owner only)
// @Tags shares
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param share body service.InviteShareRequest true "Invitation data"
// @Success 201 {object} service.ShareResponse "Successfully invited"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Scope or user not found"
// @Failure 409 {object} ErrorResponse "Share already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/shares [post]
func (h *ShareHandler) InviteShare(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.InviteShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	share, err := h.scopeService.InviteShare(scopeID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, share)
}

// ListShares handles GET /scopes/:id/shares
// @Summary List the scope roster
// @Description List every share of the scope (any participant)
// @Tags shares
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Success 200 {array} service.ShareResponse "Successfully retrieved shares"
// @Failure 403 {object} ErrorResponse "Not a participant"
// @Failure 404 {object} ErrorResponse "Scope not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/shares [get]
func (h *ShareHandler) ListShares(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	shares, err := h.scopeService.ListShares(scopeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shares)
}

// ListInvitations handles GET /invitations
// @Summary List pending invitations
// @Description List the authenticated user's pending incoming invitations
// @Tags shares
// @Accept json
// @Produce json
// @Success 200 {array} service.ShareResponse "Successfully retrieved invitations"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /invitations [get]
func (h *ShareHandler) ListInvitations(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	invitations, err := h.scopeService.ListInvitations(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitations)
}

// RespondToShare handles POST /scopes/:id/shares/respond
// @Summary Answer an invitation
// @Description Accept or reject the authenticated user's own pending invitation
// @Tags shares
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param response body service.RespondShareRequest true "Answer"
// @Success 200 {object} service.ShareResponse "Successfully answered"
// @Failure 400 {object} ErrorResponse "Invitation is not pending"
// @Failure 404 {object} ErrorResponse "Share not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/shares/respond [post]
func (h *ShareHandler) RespondToShare(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.RespondShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	share, err := h.scopeService.RespondToShare(scopeID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, share)
}

// UpdateShareRole handles PUT /scopes/:id/shares/:userId
// @Summary Change a collaborator's role
// @Description Change a collaborator's role on the scope (owner only)
// @Tags shares
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param userId path string true "Collaborator user ID (UUID)"
// @Param share body service.UpdateShareRequest true "New role"
// @Success 200 {object} service.ShareResponse "Successfully updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Share not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/shares/{userId} [put]
func (h *ShareHandler) UpdateShareRole(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	collaboratorID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	var req service.UpdateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	share, err := h.scopeService.UpdateShareRole(scopeID, userID, collaboratorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, share)
}

// RevokeShare handles DELETE /scopes/:id/shares/:userId
// @Summary Revoke a collaborator's access
// @Description Revoke a collaborator's access to the scope (owner only)
// @Tags shares
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param userId path string true "Collaborator user ID (UUID)"
// @Success 204 "Successfully revoked"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Share not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/shares/{userId} [delete]
func (h *ShareHandler) RevokeShare(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	collaboratorID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.scopeService.RevokeShare(scopeID, userID, collaboratorID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
