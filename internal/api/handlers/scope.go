package handlers

import (
	"net/http"

	"projects-manager-backend/internal/auth"
	"projects-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScopeHandler handles HTTP requests for scope operations
type ScopeHandler struct {
	scopeService service.ScopeServiceInterface
}

// NewScopeHandler creates a new scope handler
func NewScopeHandler(scopeService service.ScopeServiceInterface) *ScopeHandler {
	return &ScopeHandler{
		scopeService: scopeService,
	}
}

// CreateScope handles POST /scopes
// @Summary Create a new scope
// @Description Create a scope owned by the authenticated user
// @Tags scopes
// @Accept json
// @Produce json
// @Param scope body service.CreateScopeRequest true "Scope data"
// @Success 201 {object} service.ScopeResponse "Successfully created scope"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes [post]
func (h *ScopeHandler) CreateScope(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req service.CreateScopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	scope, err := h.scopeService.CreateScope(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, scope)
}

// ListScopes handles GET /scopes
// @Summary List scopes
// @Description List every scope the authenticated user owns or participates in
// @Tags scopes
// @Accept json
// @Produce json
// @Success 200 {array} service.ScopeResponse "Successfully retrieved scopes"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes [get]
func (h *ScopeHandler) ListScopes(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	scopes, err := h.scopeService.ListScopes(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scopes)
}

// GetScope handles GET /scopes/:id
// @Summary Get scope by ID
// @Description Get a specific scope by its UUID
// @Tags scopes
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Success 200 {object} service.ScopeResponse "Successfully retrieved scope"
// @Failure 400 {object} ErrorResponse "Invalid scope ID"
// @Failure 403 {object} ErrorResponse "Not a participant"
// @Failure 404 {object} ErrorResponse "Scope not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id} [get]
func (h *ScopeHandler) GetScope(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	scope, err := h.scopeService.GetScope(scopeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scope)
}

// UpdateScope handles PUT /scopes/:id
// @Summary Update scope
// @Description Update scope metadata (owner only)
// @Tags scopes
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param scope body service.UpdateScopeRequest true "Updated scope data"
// @Success 200 {object} service.ScopeResponse "Successfully updated scope"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Scope not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id} [put]
func (h *ScopeHandler) UpdateScope(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateScopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	scope, err := h.scopeService.UpdateScope(scopeID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scope)
}

// DeleteScope handles DELETE /scopes/:id
// @Summary Delete scope
// @Description Delete a scope and everything under it (owner only)
// @Tags scopes
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Success 204 "Successfully deleted scope"
// @Failure 400 {object} ErrorResponse "Invalid scope ID"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Scope not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id} [delete]
func (h *ScopeHandler) DeleteScope(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.scopeService.DeleteScope(scopeID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// IntegrationFlagRequest represents the payload for the scope integration flag
type IntegrationFlagRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetIntegrationFlag handles PUT /scopes/:id/integration
// @Summary Set scope integration flag
// @Description Enable or disable GitHub integration for the whole scope (owner only)
// @Tags scopes
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param flag body IntegrationFlagRequest true "Flag value"
// @Success 200 {object} service.ScopeResponse "Successfully updated flag"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Scope not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/integration [put]
func (h *ScopeHandler) SetIntegrationFlag(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req IntegrationFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	scope, err := h.scopeService.SetIntegrationEnabled(scopeID, userID, *req.Enabled)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scope)
}
