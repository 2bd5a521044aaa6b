package handlers

import (
	"net/http"

	"projects-manager-backend/internal/auth"
	"projects-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ConfigHandler handles HTTP requests for per-user integration configuration.
// Every endpoint operates on the authenticated user's own row; there is no
// way to address another participant's configuration.
type ConfigHandler struct {
	configService service.ConfigServiceInterface
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(configService service.ConfigServiceInterface) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
	}
}

// GetConfig handles GET /scopes/:id/config
// @Summary Get own integration configuration
// @Description Get the authenticated user's configuration for the scope. The stored token never appears in the response.
// @Tags config
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Success 200 {object} service.ConfigResponse "Successfully retrieved configuration"
// @Failure 403 {object} ErrorResponse "Not a participant"
// @Failure 404 {object} ErrorResponse "Scope not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	cfg, err := h.configService.GetOwnConfig(scopeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UpdateConfig handles PUT /scopes/:id/config
// @Summary Update own integration configuration
// @Description Upsert the authenticated user's configuration. Omitted fields keep their stored value; a repository change triggers hidden label resolution.
// @Tags config
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param config body service.UpdateConfigRequest true "Configuration data"
// @Success 200 {object} service.ConfigResponse "Successfully updated configuration"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Scope not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/config [put]
func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cfg, err := h.configService.UpdateOwnConfig(c.Request.Context(), scopeID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// ClearToken handles DELETE /scopes/:id/config/token
// @Summary Remove own stored credential
// @Description Remove the authenticated user's stored token. The rest of the configuration survives.
// @Tags config
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Success 200 {object} service.ConfigResponse "Successfully cleared token"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Configuration not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/config/token [delete]
func (h *ConfigHandler) ClearToken(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	cfg, err := h.configService.ClearToken(scopeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// TestConnection handles POST /scopes/:id/config/test
// @Summary Test the stored credential
// @Description Verify that the authenticated user's stored token can reach the tracker API
// @Tags config
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Success 200 {object} map[string]interface{} "Connection succeeded"
// @Failure 409 {object} ErrorResponse "No usable credential"
// @Failure 502 {object} ErrorResponse "Tracker rejected the credential"
// @Security BearerAuth
// @Router /scopes/{id}/config/test [post]
func (h *ConfigHandler) TestConnection(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.configService.TestConnection(c.Request.Context(), scopeID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListRepositories handles GET /scopes/:id/config/repositories
// @Summary List selectable repositories
// @Description List the repositories visible to the authenticated user's stored token
// @Tags config
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Success 200 {array} service.RepositorySelection "Successfully retrieved repositories"
// @Failure 409 {object} ErrorResponse "No usable credential"
// @Failure 502 {object} ErrorResponse "Tracker call failed"
// @Security BearerAuth
// @Router /scopes/{id}/config/repositories [get]
func (h *ConfigHandler) ListRepositories(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	repos, err := h.configService.ListRepositories(c.Request.Context(), scopeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, repos)
}

// ListProjects handles GET /scopes/:id/config/projects
// @Summary List selectable projects
// @Description List classic projects of the authenticated user's selected repository
// @Tags config
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Success 200 {array} service.ProjectSelection "Successfully retrieved projects"
// @Failure 409 {object} ErrorResponse "No repository selected or no usable credential"
// @Failure 502 {object} ErrorResponse "Tracker call failed"
// @Security BearerAuth
// @Router /scopes/{id}/config/projects [get]
func (h *ConfigHandler) ListProjects(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	projects, err := h.configService.ListProjects(c.Request.Context(), scopeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// ListMilestones handles GET /scopes/:id/config/milestones
// @Summary List selectable milestones
// @Description List milestones of the authenticated user's selected repository
// @Tags config
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Success 200 {array} service.MilestoneSelection "Successfully retrieved milestones"
// @Failure 409 {object} ErrorResponse "No repository selected or no usable credential"
// @Failure 502 {object} ErrorResponse "Tracker call failed"
// @Security BearerAuth
// @Router /scopes/{id}/config/milestones [get]
func (h *ConfigHandler) ListMilestones(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	milestones, err := h.configService.ListMilestones(c.Request.Context(), scopeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, milestones)
}
