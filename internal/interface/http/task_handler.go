package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/diligence-app/diligence-backend/internal/application"
	"github.com/diligence-app/diligence-backend/internal/domain/entity"
	repo "github.com/diligence-app/diligence-backend/internal/domain/repository"
	"github.com/diligence-app/diligence-backend/pkg/response"
	"github.com/diligence-app/diligence-backend/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type taskRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
	Category        string `json:"category"`
	Color           string `json:"color"`
	IsRecurring     bool   `json:"is_recurring"`
	Completed       bool   `json:"completed"` // honored on update only
}

func taskJSON(t *entity.Task) gin.H {
	return gin.H{
		"id":               t.ID,
		"title":            t.Title,
		"description":      t.Description,
		"duration_minutes": t.DurationMinutes,
		"category":         t.Category,
		"color":            t.Color,
		"is_recurring":     t.IsRecurring,
		"completed":        t.Completed,
		"created_at":       t.CreatedAt,
	}
}

// pathID validates a :id path segment. A non-UUID id can never match a row,
// so it maps to the same not-found outcome as a missing one.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// List GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	tasks, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("list tasks failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list tasks", nil)
		return
	}
	out := make([]gin.H, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskJSON(&tasks[i]))
	}
	response.Success(c, http.StatusOK, out, "tasks", gin.H{"count": len(out)})
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), uid, taskInput(req))
	if err != nil {
		h.Logger.WithError(err).Error("create task failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create task", nil)
		return
	}
	response.Success(c, http.StatusCreated, taskJSON(t), "task created", nil)
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")
	id, ok := pathID(c)
	if !ok {
		response.Error[any](c, http.StatusNotFound, "task not found", nil)
		return
	}
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), uid, id, taskInput(req))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update task failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to update task", nil)
		return
	}
	response.Success(c, http.StatusOK, taskJSON(t), "task updated", nil)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	id, ok := pathID(c)
	if !ok {
		response.Error[any](c, http.StatusNotFound, "task not found", nil)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), uid, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete task failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to delete task", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "task deleted", nil)
}

func taskInput(req taskRequest) application.TaskInput {
	return application.TaskInput{
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
		Color:           req.Color,
		IsRecurring:     req.IsRecurring,
		Completed:       req.Completed,
	}
}
