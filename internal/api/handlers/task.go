package handlers

import (
	"net/http"

	"projects-manager-backend/internal/auth"
	"projects-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for task operations
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask handles POST /scopes/:id/tasks
// @Summary Create a new task
// @Description Create a task in the scope. Sync to the tracker is attempted with the caller's capability; its outcome rides along in sync_status.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Successfully created task"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Scope not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), scopeID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /scopes/:id/tasks
// @Summary List tasks
// @Description List every task of the scope
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Success 200 {array} service.TaskResponse "Successfully retrieved tasks"
// @Failure 403 {object} ErrorResponse "Not a participant"
// @Failure 404 {object} ErrorResponse "Scope not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(scopeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /scopes/:id/tasks/:taskId
// @Summary Get task by ID
// @Description Get a specific task with its latest sync outcome
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param taskId path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse "Successfully retrieved task"
// @Failure 403 {object} ErrorResponse "Not a participant"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/tasks/{taskId} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "taskId")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(scopeID, taskID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /scopes/:id/tasks/:taskId
// @Summary Update task
// @Description Edit a task; the change is pushed to its linked issue with the caller's capability
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param taskId path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Updated task data"
// @Success 200 {object} service.TaskResponse "Successfully updated task"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "taskId")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), scopeID, taskID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CompletionRequest represents the payload for completing or reopening a task
type CompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// SetCompleted handles PUT /scopes/:id/tasks/:taskId/completion
// @Summary Complete or reopen a task
// @Description Mark the task completed (closing its linked issue) or reopen it
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param taskId path string true "Task ID (UUID)"
// @Param completion body CompletionRequest true "Completion flag"
// @Success 200 {object} service.TaskResponse "Successfully updated completion"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/tasks/{taskId}/completion [put]
func (h *TaskHandler) SetCompleted(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "taskId")
	if !ok {
		return
	}

	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.SetCompleted(c.Request.Context(), scopeID, taskID, userID, *req.Completed)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /scopes/:id/tasks/:taskId
// @Summary Delete task
// @Description Delete a task (owner only); its linked issue is closed best effort
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param taskId path string true "Task ID (UUID)"
// @Success 204 "Successfully deleted task"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), scopeID, taskID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSyncLogs handles GET /scopes/:id/tasks/:taskId/sync-logs
// @Summary Get sync audit trail
// @Description List the task's sync attempts, newest first
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param taskId path string true "Task ID (UUID)"
// @Success 200 {array} service.SyncLogResponse "Successfully retrieved sync logs"
// @Failure 403 {object} ErrorResponse "Not a participant"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scopes/{id}/tasks/{taskId}/sync-logs [get]
func (h *TaskHandler) GetSyncLogs(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	scopeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "taskId")
	if !ok {
		return
	}

	logs, err := h.taskService.GetSyncLogs(scopeID, taskID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
